// Package codec provides the streaming compression formats used by the
// compress and decompress commands.
//
// Every codec produces the standard container for its format, so files
// written here can be read by any other implementation (brotli, gzip and
// zstd command line tools included) and vice versa.
//
// Available codecs:
//   - brotli: default, RFC 7932 (github.com/andybalholm/brotli)
//   - gzip: RFC 1952 (github.com/klauspost/compress/gzip)
//   - zstd: RFC 8878 (github.com/klauspost/compress/zstd)
//
// Example Usage:
//
//	c, err := codec.Lookup("brotli")
//	w, err := c.NewWriter(dst)
//	_, err = io.Copy(w, src)
//	err = w.Close() // flushes the final block
package codec
