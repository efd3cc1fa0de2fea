// Package filesystem provides the shell's file and directory commands.
//
// This package is organized into specialized modules:
//   - basic: Core file operations (cat, add, rn, rm)
//   - directory: Navigation and listing (up, cd, ls)
//   - operations: Streamed transfers (cp, mv)
//   - metadata: File digests (hash)
//   - archives: Compression (compress, decompress)
//
// All operations:
//   - Resolve operands against the session's working directory
//   - Stream file contents in bounded chunks
//   - Never overwrite an existing file
//   - Return errors wrapping one of the errs kinds
//
// Example Usage:
//
//	fs := filesystem.NewProvider(stream.New(stream.Options{}),
//	    filesystem.WithCodec(codec.Default()))
//	err := fs.Execute(ctx, types.Command{Name: "ls"}, sess)
package filesystem
