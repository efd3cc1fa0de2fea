// Package session holds the state of one interactive shell session.
//
// The only mutable piece is the working directory. Directory keeps it
// private and exposes exactly two mutators, Up and Change, both of which
// leave the working directory pointing at an existing directory:
//
//   - Up moves to the parent, and is a no-op at a filesystem root
//   - Change validates its target before switching to it
//
// Session bundles the directory with the values every command handler
// needs (greeting name, output stream, session ID).
//
// Example Usage:
//
//	dir, err := session.NewDirectory(home)
//	sess := session.New("alice", dir, os.Stdout)
//	err = sess.Dir.Change("/tmp")
//	sess.Dir.Up()
package session
