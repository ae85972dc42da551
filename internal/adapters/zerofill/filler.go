package zerofill

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/hailam/mksample/internal/ports"
)

const chunkSize = 1 << 20

type ZeroFiller struct{}

func New() ports.Filler {
	return &ZeroFiller{}
}

// Fill creates a file of exactly size zero bytes. It first asks the
// platform for an exact-length allocation (the result may be sparse, but
// every byte up to size reads as zero); if the primitive is unavailable it
// falls back to streaming zero chunks with a sync before reporting success.
func (g *ZeroFiller) Fill(path string, size int64) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if size <= 0 {
		return nil
	}
	if err := allocate(f, size); err != nil {
		log.Debug().Err(err).Str("path", path).
			Msg("exact allocation unavailable, streaming zeroes")
		return streamZeroes(f, size)
	}
	return nil
}

// streamZeroes is the portable fallback: write fixed chunks from an
// all-zero buffer, truncating the final chunk, then fsync.
func streamZeroes(f *os.File, size int64) error {
	zero := make([]byte, chunkSize)
	var written int64
	for written < size {
		n := int64(len(zero))
		if size-written < n {
			n = size - written
		}
		if _, err := f.Write(zero[:n]); err != nil {
			return errors.Wrap(err, "write")
		}
		written += n
	}
	return errors.Wrap(f.Sync(), "fsync")
}
