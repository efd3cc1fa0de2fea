package codec

import (
	"io"

	"github.com/andybalholm/brotli"
)

// DefaultBrotliQuality trades ratio for speed on large files
const DefaultBrotliQuality = 6

// Brotli implements Codec for RFC 7932 streams
type Brotli struct {
	Quality int
}

func (Brotli) Name() string      { return "brotli" }
func (Brotli) Extension() string { return ".br" }

func (b Brotli) NewWriter(w io.Writer) (io.WriteCloser, error) {
	quality := b.Quality
	if quality < brotli.BestSpeed || quality > brotli.BestCompression {
		quality = DefaultBrotliQuality
	}
	return brotli.NewWriterLevel(w, quality), nil
}

func (Brotli) NewReader(r io.Reader) (io.ReadCloser, error) {
	return nopCloser{brotli.NewReader(r)}, nil
}
