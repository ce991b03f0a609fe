package syncer

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ReferenceDirName is a name of the reference tree directory, located next to the program directory
const ReferenceDirName = "UmaTools"

// Roots represents base directories entries are resolved against
type Roots struct {
	// Reference is an absolute path of the tree to copy assets from
	Reference string

	// Target is an absolute path of the tree to copy assets to
	Target string
}

// RootsFromDir returns roots for program located in <dir>
func RootsFromDir(dir string) (Roots, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return Roots{}, errors.Wrap(err, "Get absolute program directory")
	}
	return Roots{
		Reference: filepath.Join(filepath.Dir(dir), ReferenceDirName),
		Target:    dir,
	}, nil
}

// ExecutableRoots returns roots for the running program executable
func ExecutableRoots() (Roots, error) {
	exe, err := os.Executable()
	if err != nil {
		return Roots{}, errors.Wrap(err, "Get executable path")
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return Roots{}, errors.Wrap(err, "Resolve executable path")
	}
	return RootsFromDir(filepath.Dir(exe))
}

// Override returns copy of <r> with non-empty <reference> and <target> used instead of the current ones
func (r Roots) Override(reference, target string) (Roots, error) {
	var err error
	if reference != "" {
		if r.Reference, err = filepath.Abs(reference); err != nil {
			return r, errors.Wrap(err, "Get absolute reference directory")
		}
	}
	if target != "" {
		if r.Target, err = filepath.Abs(target); err != nil {
			return r, errors.Wrap(err, "Get absolute target directory")
		}
	}
	return r, nil
}

// ReferenceName returns base name of the reference directory
func (r Roots) ReferenceName() string {
	return filepath.Base(r.Reference)
}
