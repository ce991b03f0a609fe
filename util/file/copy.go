package file

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// IsRegular returns true if <path> exists and is a regular file.
//
// Missing path is not an error. Any other stat failure is returned.
func IsRegular(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "Stat file")
	}
	return info.Mode().IsRegular(), nil
}

// EnsureParent creates every missing parent directory of <path>
func EnsureParent(path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	return errors.Wrap(err, "Create parent directories")
}

// SameFileError represents attempt to copy a file onto itself
type SameFileError struct {
	Path string
}

func (e SameFileError) Error() string {
	return fmt.Sprintf("Source and destination are the same file: %v", e.Path)
}

// Copy copies content, permission bits, access and modification time of <src> file path to <dst> file path.
//
// Existing <dst> is truncated and overwritten. Parent directory of <dst> must exist. Returns SameFileError if <dst>
// resolves to <src>.
func Copy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return errors.Wrap(err, "Stat source")
	}

	dstInfo, err := os.Stat(dst)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "Stat destination")
	}
	if err == nil && os.SameFile(info, dstInfo) {
		return errors.Wrap(SameFileError{Path: src}, "Check destination")
	}

	if err := copyContent(src, dst, info.Mode().Perm()); err != nil {
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "Set permissions")
	}
	if err := os.Chtimes(dst, accessTime(info), info.ModTime()); err != nil {
		return errors.Wrap(err, "Set modification time")
	}
	return nil
}

// copyContent writes content of <src> to <dst>, creating <dst> with <perm> if it does not exist
func copyContent(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "Open source")
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrap(err, "Open destination")
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(err, "Copy content")
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return errors.Wrap(err, "Flush destination")
	}
	return errors.Wrap(out.Close(), "Close destination")
}
