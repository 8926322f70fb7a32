//go:build !linux && !windows

package process

func newPlatformFinder(string) Finder {
	return &ScanFinder{}
}

func newPlatformRSSReader(string) RSSReader {
	return &PsutilReader{}
}
