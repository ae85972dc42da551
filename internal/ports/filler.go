package ports

// Filler is the port for a content strategy that can produce a file.
type Filler interface {
	// Fill writes a file at outPath exactly sizeBytes long.
	Fill(outPath string, sizeBytes int64) error
}
