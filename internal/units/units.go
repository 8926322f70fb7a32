package units

import "fmt"

var binaryUnits = []string{"KiB", "MiB", "GiB", "TiB"}

// HumanReadable formats a kilobyte count using the largest binary unit that keeps
// the value below 1024, stopping at TiB.
func HumanReadable(kb uint64) string {
	size := float64(kb)
	unit := binaryUnits[0]
	for i, u := range binaryUnits {
		unit = u
		if size < 1024 || i == len(binaryUnits)-1 {
			break
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f %s", size, unit)
}

// Format returns kb either as HumanReadable or as a plain KiB count
func Format(kb uint64, human bool) string {
	if human {
		return HumanReadable(kb)
	}
	return fmt.Sprintf("%d KiB", kb)
}
