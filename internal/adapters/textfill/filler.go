package textfill

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hailam/mksample/internal/ports"
)

// Sentence is the repeating pattern written in text mode. Consumers of the
// generated samples care about size and printability, not prose.
const Sentence = "The quick brown fox jumps over the lazy dog. "

// Write in 1 MiB-ish chunks; each full chunk holds a whole number of
// sentence repetitions so the stream stays phase-aligned across chunks.
const chunkSize = 1 << 20

type TextFiller struct{}

func New() ports.Filler {
	return &TextFiller{}
}

// Fill writes the repeating sentence until exactly size bytes have been
// produced, then re-checks the on-disk length and corrects any drift
// before syncing.
func (g *TextFiller) Fill(path string, size int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	chunk := bytes.Repeat([]byte(Sentence), chunkSize/len(Sentence))
	var written int64
	for written < size {
		toWrite := int64(len(chunk))
		if size-written < toWrite {
			toWrite = size - written
		}
		if _, err := f.Write(chunk[:toWrite]); err != nil {
			return err
		}
		written += toWrite
	}
	if err := adjustLength(f, size); err != nil {
		return err
	}
	return f.Sync()
}

// adjustLength pads (with trailing zero bytes) or truncates the file so
// its length is exactly size. Failures here are surfaced rather than
// suppressed: a silently short sample defeats the size contract.
func adjustLength(f *os.File, size int64) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == size {
		return nil
	}
	if err := f.Truncate(size); err != nil {
		return fmt.Errorf("resizing %s from %d to %d bytes: %w", f.Name(), info.Size(), size, err)
	}
	return nil
}
