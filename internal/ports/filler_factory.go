package ports

// FillerFactory is the port for looking up fillers by Mode.
type FillerFactory interface {
	// For returns a Filler for the given Mode, or an error if unsupported.
	For(m Mode) (Filler, error)
}
