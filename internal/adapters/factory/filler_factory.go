package factory

import (
	"fmt"

	"github.com/hailam/mksample/internal/adapters/randfill"
	"github.com/hailam/mksample/internal/adapters/textfill"
	"github.com/hailam/mksample/internal/adapters/zerofill"
	"github.com/hailam/mksample/internal/ports"
)

// StaticFillerFactory provides concrete implementations for Fillers.
type StaticFillerFactory struct {
	fillers map[ports.Mode]ports.Filler
}

// NewStaticFillerFactory creates a factory with pre-initialized fillers.
// The random filler draws its seed from the system entropy pool.
func NewStaticFillerFactory() ports.FillerFactory {
	return newFactory(randfill.New())
}

// NewSeededFillerFactory pins the random filler to seed, making random
// mode output reproducible across runs.
func NewSeededFillerFactory(seed int64) ports.FillerFactory {
	return newFactory(randfill.NewSeeded(seed))
}

func newFactory(random ports.Filler) ports.FillerFactory {
	return &StaticFillerFactory{
		fillers: map[ports.Mode]ports.Filler{
			ports.ModeText:   textfill.New(),
			ports.ModeZero:   zerofill.New(),
			ports.ModeRandom: random,
		},
	}
}

// For returns the appropriate Filler for the given Mode.
func (f *StaticFillerFactory) For(m ports.Mode) (ports.Filler, error) {
	filler, ok := f.fillers[m]
	if !ok {
		return nil, fmt.Errorf("unsupported mode: %s", m)
	}
	return filler, nil
}
