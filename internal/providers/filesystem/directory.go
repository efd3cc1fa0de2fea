package filesystem

import (
	"context"
	"io/fs"
	"os"
	"sort"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/GriffinCanCode/fileshell/internal/ui"
)

// DirectoryOps handles navigation and listing
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory operation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			Verb:        "up",
			Description: "Go to the parent directory",
		},
		{
			Verb:        "cd",
			Description: "Change the current directory",
			Parameters: []types.Parameter{
				{Name: "path_to_directory", Description: "Directory to enter", Required: true},
			},
		},
		{
			Verb:        "ls",
			Description: "List the current directory",
		},
	}
}

// Up moves to the parent directory; at the root it does nothing
func (d *DirectoryOps) Up(ctx context.Context, cmd types.Command, sess *session.Session) error {
	sess.Dir.Up()
	return nil
}

// Change enters another directory
func (d *DirectoryOps) Change(ctx context.Context, cmd types.Command, sess *session.Session) error {
	target := cmd.Arg(0)
	if target != "" {
		target = d.resolvePath(sess, target)
	}
	return sess.Dir.Change(target)
}

// List prints the current directory: directories, then files, then
// everything else, each group in name order.
func (d *DirectoryOps) List(ctx context.Context, cmd types.Command, sess *session.Session) error {
	cwd := sess.Dir.Cwd()
	entries, err := os.ReadDir(cwd)
	if err != nil {
		return errs.FromOS("ls", cwd, err)
	}

	listing := sortEntries(entries)
	rows := make([]ui.Entry, len(listing))
	for i, e := range listing {
		rows[i] = ui.Entry{Name: e.name, Type: string(e.typ)}
	}
	return ui.RenderListing(sess.Out, rows)
}

type listed struct {
	name string
	typ  EntryType
}

func sortEntries(entries []fs.DirEntry) []listed {
	out := make([]listed, 0, len(entries))
	for _, e := range entries {
		out = append(out, listed{name: e.Name(), typ: classify(e.Type())})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].typ.rank(), out[j].typ.rank(); ri != rj {
			return ri < rj
		}
		return out[i].name < out[j].name
	})
	return out
}

// classify maps a directory entry's type bits to a listing type.
// Symlinks are reported as such without following them.
func classify(mode fs.FileMode) EntryType {
	switch {
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}
