package utils

import (
	"github.com/hailam/mksample/internal/ports"
	"github.com/hailam/mksample/internal/utils"
)

// UnitSizeResolver adapts the utils.ResolveSize function to the
// ports.SizeResolver interface.
type UnitSizeResolver struct{}

// NewUnitSizeResolver creates a new size resolver adapter.
func NewUnitSizeResolver() ports.SizeResolver {
	return &UnitSizeResolver{}
}

// Resolve uses the existing utility function to resolve the size spec.
func (r *UnitSizeResolver) Resolve(unitsSpec string) (int64, error) {
	return utils.ResolveSize(unitsSpec)
}
