package application

import (
	"errors"
	"fmt"
	"os"

	"github.com/hailam/mksample/internal/ports"
	"github.com/hailam/mksample/internal/utils"
)

// Error classes surfaced to the CLI; wrapped errors carry the detail.
var (
	ErrInvalidSize     = errors.New("invalid size")
	ErrUnsupportedMode = errors.New("unsupported mode")
)

// SampleService orchestrates sample generation by resolving the size
// spec, selecting the filler for the mode, invoking it, and verifying
// the resulting byte length.
type SampleService struct {
	factory  ports.FillerFactory
	resolver ports.SizeResolver
}

// NewSampleService constructs a SampleService with the given factory and
// resolver.
func NewSampleService(factory ports.FillerFactory, resolver ports.SizeResolver) *SampleService {
	return &SampleService{factory: factory, resolver: resolver}
}

// ParseMode maps a mode string to its Mode constant.
func ParseMode(s string) (ports.Mode, error) {
	switch s {
	case "text":
		return ports.ModeText, nil
	case "zero":
		return ports.ModeZero, nil
	case "random":
		return ports.ModeRandom, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, zero or random)", ErrUnsupportedMode, s)
	}
}

// CreateSample generates a file of unitsSpec whole MiB filled according
// to mode. When outPath is empty a name is derived from the unit count.
// It returns the final path and byte count.
//
// The produced file is always exactly units*1048576 bytes long; a filler
// that reports success with any other length is treated as a failure.
func (s *SampleService) CreateSample(outPath, unitsSpec, mode string) (string, int64, error) {
	// 1. Resolve the whole-MiB spec into an exact byte count
	sizeBytes, err := s.resolver.Resolve(unitsSpec)
	if err != nil {
		return "", 0, fmt.Errorf("%w %q: %v", ErrInvalidSize, unitsSpec, err)
	}

	// 2. Validate the requested content pattern
	m, err := ParseMode(mode)
	if err != nil {
		return "", 0, err
	}

	if outPath == "" {
		outPath = utils.DefaultPath(sizeBytes / utils.MiB)
	}

	// 3. Retrieve the filler for this mode
	filler, err := s.factory.For(m)
	if err != nil {
		return "", 0, fmt.Errorf("no filler for mode %q: %w", m, err)
	}

	// 4. Invoke the filler
	if err := filler.Fill(outPath, sizeBytes); err != nil {
		return "", 0, fmt.Errorf("failed to generate %s: %w", outPath, err)
	}

	// 5. Enforce the postcondition: on-disk length equals the target
	info, err := os.Stat(outPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to verify %s: %w", outPath, err)
	}
	if info.Size() != sizeBytes {
		return "", 0, fmt.Errorf("generated %s is %d bytes, want %d", outPath, info.Size(), sizeBytes)
	}
	return outPath, sizeBytes, nil
}
