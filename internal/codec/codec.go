package codec

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Codec creates encoders and decoders for one compression format
type Codec interface {
	// Name returns the registry name, e.g. "brotli"
	Name() string

	// Extension returns the conventional file suffix, e.g. ".br"
	Extension() string

	// NewWriter wraps w in an encoder. Close must be called to flush.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader wraps r in a decoder
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// DefaultName is the codec used when none is configured
const DefaultName = "brotli"

var registry = map[string]Codec{}

func register(c Codec) {
	registry[c.Name()] = c
}

func init() {
	register(Brotli{Quality: DefaultBrotliQuality})
	register(Gzip{})
	register(Zstd{})
}

// Lookup returns the codec registered under name
func Lookup(name string) (Codec, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Default returns the brotli codec
func Default() Codec {
	return registry[DefaultName]
}

// Names lists registered codec names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nopCloser adapts decoders that hold no resources
type nopCloser struct {
	io.Reader
}

func (nopCloser) Close() error { return nil }
