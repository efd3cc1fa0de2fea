package session

import (
	"io"

	"github.com/GriffinCanCode/fileshell/internal/shared/id"
)

// DefaultUsername is used when no --username is given
const DefaultUsername = "User"

// Session carries everything a command handler may touch
type Session struct {
	ID       id.SessionID
	Username string
	Dir      *Directory
	Out      io.Writer
}

// New creates a session with a fresh ID
func New(username string, dir *Directory, out io.Writer) *Session {
	if username == "" {
		username = DefaultUsername
	}
	return &Session{
		ID:       id.NewSessionID(),
		Username: username,
		Dir:      dir,
		Out:      out,
	}
}
