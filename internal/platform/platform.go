package platform

import (
	"fmt"
	"runtime"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
	Darwin  SupportedOS = "darwin"
	FreeBSD SupportedOS = "freebsd"
)

// Backend names the source memory figures are read from
type Backend string

const (
	Procfs   Backend = "procfs"
	Gopsutil Backend = "gopsutil"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	switch GetOS() {
	case Linux, Windows, Darwin, FreeBSD:
		return true
	}
	return false
}

// GetBackend returns the metrics backend used on the current OS
func GetBackend() Backend {
	if GetOS() == Linux {
		return Procfs
	}
	return Gopsutil
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux, windows, darwin, freebsd", runtime.GOOS)
	}
	return nil
}
