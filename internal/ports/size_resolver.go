package ports

// SizeResolver resolves a size argument given in whole MiB units into an
// exact byte count.
type SizeResolver interface {
	Resolve(unitsSpec string) (int64, error)
}
