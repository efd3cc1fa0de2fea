// Package stream implements the bounded-memory file pipelines behind cat,
// cp, mv, hash, compress and decompress.
//
// Every pipeline moves data through a single buffer of Options.ChunkSize
// bytes, checking the context between chunks so an interrupt aborts a
// transfer promptly. A pipeline reports success only after the source is
// fully drained and the destination is flushed and closed.
//
// Destinations are always created exclusively: an existing file is never
// truncated, and a destination the pipeline created is removed again if
// the pipeline fails, so an incomplete file is never left looking like a
// finished transfer.
//
// Example Usage:
//
//	p := stream.New(stream.Options{ChunkSize: 64 * 1024})
//	res, err := p.Move(ctx, "/home/u/a.txt", "/home/u/archive")
//	sum, err := p.Digest(ctx, "/home/u/a.txt", utils.DefaultHasher())
package stream
