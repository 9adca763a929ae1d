package chunker

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"
)

// ErrInvalidChunkSize is returned when the requested chunk size is not positive.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Chunks returns a lazy sequence of consecutive substrings of text, each holding
// at most size code points. The last chunk may be shorter. Empty text yields nothing.
//
// Offsets advance one rune at a time, so a multi-byte character is never split.
// Invalid UTF-8 bytes count as one code point each and are passed through as-is.
func Chunks(text string, size int) (iter.Seq[string], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	return func(yield func(string) bool) {
		start, n := 0, 0
		for i := 0; i < len(text); {
			_, width := utf8.DecodeRuneInString(text[i:])
			i += width
			n++
			if n < size {
				continue
			}
			if !yield(text[start:i]) {
				return
			}
			start, n = i, 0
		}
		if start < len(text) {
			yield(text[start:])
		}
	}, nil
}

// Split collects every chunk of text into a slice.
func Split(text string, size int) ([]string, error) {
	seq, err := Chunks(text, size)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Head returns the first n code points of text, or text itself when it is shorter.
func Head(text string, n int) string {
	seq, err := Chunks(text, n)
	if err != nil {
		return ""
	}
	for chunk := range seq {
		return chunk
	}
	return ""
}
