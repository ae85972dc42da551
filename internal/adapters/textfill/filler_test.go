package textfill

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/mksample/internal/ports"
)

func TestTextFiller_Fill(t *testing.T) {
	filler := New()

	// Ensure it implements the interface
	var _ ports.Filler = filler

	tempDir := t.TempDir()
	sentenceLen := int64(len(Sentence))

	testCases := []struct {
		name string
		size int64
	}{
		{"ZeroSize", 0},
		{"OneByte", 1},
		{"OneShortOfSentence", sentenceLen - 1},
		{"ExactSentence", sentenceLen},
		{"OnePastSentence", sentenceLen + 1},
		{"NotDivisibleBySentence", 100},
		{"ChunkBoundary", 1 << 20},
		{"SlightlyOverChunk", 1<<20 + 1},
		{"MultipleChunks", 2<<20 + 12345},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outPath := filepath.Join(tempDir, fmt.Sprintf("test_%s.txt", tc.name))

			if err := filler.Fill(outPath, tc.size); err != nil {
				t.Fatalf("Fill(%q, %d) returned unexpected error: %v", outPath, tc.size, err)
			}

			got, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("reading generated file %q: %v", outPath, err)
			}
			if int64(len(got)) != tc.size {
				t.Fatalf("generated file %q size = %d, want %d", outPath, len(got), tc.size)
			}

			// The stream must be the sentence repeated continuously and
			// cut at exactly the requested byte, never garbage.
			want := bytes.Repeat([]byte(Sentence), int(tc.size/sentenceLen)+1)[:tc.size]
			if !bytes.Equal(got, want) {
				t.Errorf("generated content diverges from the repeating sentence (size %d)", tc.size)
			}
			for i, b := range got {
				if b < 0x20 || b > 0x7e {
					t.Fatalf("byte %d = %#x is not printable ASCII", i, b)
				}
			}
		})
	}

	t.Run("InvalidPath", func(t *testing.T) {
		// The temp directory itself is not a valid regular file target.
		if err := filler.Fill(tempDir, 100); err == nil {
			t.Errorf("Fill(%q, 100) expected an error for invalid path, but got nil", tempDir)
		}
	})

	t.Run("OverwritesExisting", func(t *testing.T) {
		outPath := filepath.Join(tempDir, "existing.txt")
		if err := os.WriteFile(outPath, make([]byte, 4096), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := filler.Fill(outPath, 100); err != nil {
			t.Fatalf("Fill over existing file: %v", err)
		}
		info, err := os.Stat(outPath)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != 100 {
			t.Errorf("overwritten file size = %d, want 100", info.Size())
		}
	})
}

func TestAdjustLength(t *testing.T) {
	tempDir := t.TempDir()

	testCases := []struct {
		name    string
		initial int64
		target  int64
	}{
		{"PadShortFile", 10, 64},
		{"TruncateLongFile", 64, 10},
		{"ExactAlready", 32, 32},
		{"PadEmpty", 0, 16},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tc.name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			if _, err := f.Write(bytes.Repeat([]byte{'x'}, int(tc.initial))); err != nil {
				t.Fatal(err)
			}

			if err := adjustLength(f, tc.target); err != nil {
				t.Fatalf("adjustLength(%d -> %d): %v", tc.initial, tc.target, err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if int64(len(got)) != tc.target {
				t.Fatalf("adjusted size = %d, want %d", len(got), tc.target)
			}
			// Padding must be zero bytes at the end, original prefix intact.
			keep := tc.initial
			if keep > tc.target {
				keep = tc.target
			}
			for i := int64(0); i < keep; i++ {
				if got[i] != 'x' {
					t.Fatalf("byte %d = %#x, original content was clobbered", i, got[i])
				}
			}
			for i := keep; i < tc.target; i++ {
				if got[i] != 0 {
					t.Fatalf("pad byte %d = %#x, want zero", i, got[i])
				}
			}
		})
	}
}
