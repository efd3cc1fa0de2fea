// Package paths resolves shell operands against the current working directory.
//
// Resolution is purely lexical: nothing in this package touches the
// filesystem, so callers decide what a missing or mistyped path means.
//
// # Usage
//
//	abs := paths.Resolve("/home/u", "docs/../notes.txt") // /home/u/notes.txt
//	abs = paths.Resolve("/home/u", "/etc/hosts")         // /etc/hosts
//
//	parent, ok := paths.Parent("/home/u") // "/home", true
//	_, ok = paths.Parent("/")             // "/", false
//
//	// Bare names (add, rn) never leave the working directory
//	if err := paths.ValidateName(name); err == nil {
//	    target := paths.JoinName(cwd, name)
//	}
package paths
