package stream

import (
	"os"

	"github.com/GriffinCanCode/fileshell/internal/shared/errs"
)

// removeSource deletes the source of a completed move. It is a variable so
// tests can simulate a source that cannot be removed.
var removeSource = func(path string) error {
	if err := os.Remove(path); err != nil {
		return errs.FromOS("remove", path, err)
	}
	return nil
}
