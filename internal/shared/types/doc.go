// Package types provides the data structures shared by the shell's
// dispatcher, registry and command providers.
//
// Core Types:
//   - Command: One tokenized input line (verb plus operands)
//   - Service: Provider definition listing the verbs it serves
//   - Tool: One verb with its usage and operand requirements
//   - Parameter: One positional operand or flag of a verb
//
// Example Usage:
//
//	cmd, ok := types.ParseCommand("cp notes.txt backup")
//	// cmd.Name == "cp", cmd.Args == []string{"notes.txt", "backup"}
package types
