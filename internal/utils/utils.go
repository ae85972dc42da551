package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MiB is the unit of the size argument: 1,048,576 bytes.
const MiB int64 = 1 << 20

// ResolveSize parses a whole-MiB size spec like "25" into an exact byte
// count. The spec must be a non-negative base-10 integer whose byte count
// fits in an int64.
func ResolveSize(unitsSpec string) (int64, error) {
	unitsSpec = strings.TrimSpace(unitsSpec)
	if unitsSpec == "" {
		return 0, errors.New("size is empty")
	}
	units, err := strconv.ParseInt(unitsSpec, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number %q: %v", unitsSpec, err)
	}
	if units < 0 {
		return 0, fmt.Errorf("size must be non-negative, got %d", units)
	}
	if units > math.MaxInt64/MiB {
		return 0, fmt.Errorf("size %d MiB overflows the byte counter", units)
	}
	return units * MiB, nil
}

// DefaultPath derives the output file name used when no path is given.
func DefaultPath(units int64) string {
	return fmt.Sprintf("sample_%dMB", units)
}

// FormatBytes renders a byte count in human-readable form for log output.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
