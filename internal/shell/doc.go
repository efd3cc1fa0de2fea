// Package shell implements the interactive command loop.
//
// A Shell reads one line at a time, dispatches it through the service
// registry and prints the working directory after every command. Handler
// failures are reduced to one of two notices ("Invalid input" or
// "Operation failed"); the full error is only logged. The loop ends on
// ".exit", end of input or context cancellation, all of which go through
// the same farewell.
//
// Example Usage:
//
//	sh := shell.New(registry, sess, logger,
//	    shell.WithInput(os.Stdin),
//	    shell.WithPrompt("> "))
//	err := sh.Run(ctx)
package shell
