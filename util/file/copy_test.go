package file

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsRegular(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.css")
	assert.NoError(t, os.WriteFile(path, []byte("body {}"), 0644), "should write test file")

	ok, err := IsRegular(path)
	assert.NoError(t, err, "should not return error")
	assert.True(t, ok, "should detect regular file")

	ok, err = IsRegular(filepath.Join(dir, "missing.css"))
	assert.NoError(t, err, "should not return error for missing file")
	assert.False(t, ok, "should return false for missing file")

	ok, err = IsRegular(dir)
	assert.NoError(t, err, "should not return error for directory")
	assert.False(t, ok, "should return false for directory")

	ok, err = IsRegular(filepath.Join(path, "child"))
	assert.Error(t, err, "should return error if parent is not a directory")
	assert.False(t, ok, "should return false on error")
}

func TestEnsureParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "file.js")

	assert.NoError(t, EnsureParent(path), "should create parent directories")
	assert.DirExists(t, filepath.Join(dir, "a", "b"), "should create parent directories")
	assert.NoFileExists(t, path, "should not create the file itself")

	assert.NoError(t, EnsureParent(path), "should not fail on existing directories")

	blocker := filepath.Join(dir, "blocker")
	assert.NoError(t, os.WriteFile(blocker, nil, 0644), "should write test file")
	assert.Error(t, EnsureParent(filepath.Join(blocker, "sub", "file.js")), "should fail if a parent is a file")
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "dst.json")

	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, os.WriteFile(src, []byte(`{"skills": []}`), 0640), "should write source file")
	assert.NoError(t, os.Chtimes(src, modTime, modTime), "should set source modification time")

	err := Copy(src, dst)
	assert.NoError(t, err, "should not return error")

	content, err := os.ReadFile(dst)
	assert.NoError(t, err, "should read copied file")
	assert.Exactly(t, `{"skills": []}`, string(content), "should copy content")

	info, err := os.Stat(dst)
	assert.NoError(t, err, "should stat copied file")
	assert.True(t, info.ModTime().Equal(modTime), "should preserve modification time")
	assert.Exactly(t, os.FileMode(0640), info.Mode().Perm(), "should preserve permission bits")
}

func TestCopyOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.css")
	dst := filepath.Join(dir, "dst.css")

	assert.NoError(t, os.WriteFile(src, []byte("a"), 0644), "should write source file")
	assert.NoError(t, os.WriteFile(dst, []byte("much longer old content"), 0644), "should write destination file")

	assert.NoError(t, Copy(src, dst), "should not return error")

	content, err := os.ReadFile(dst)
	assert.NoError(t, err, "should read copied file")
	assert.Exactly(t, "a", string(content), "should fully overwrite destination")
}

func TestCopyErrors(t *testing.T) {
	dir := t.TempDir()

	err := Copy(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	assert.ErrorContains(t, err, "Stat source", "should fail on missing source")

	src := filepath.Join(dir, "src.png")
	assert.NoError(t, os.WriteFile(src, []byte{0x89, 'P', 'N', 'G'}, 0644), "should write source file")
	dstDir := filepath.Join(dir, "dst.png")
	assert.NoError(t, os.Mkdir(dstDir, 0755), "should create directory at destination")

	err = Copy(src, dstDir)
	assert.ErrorContains(t, err, "Open destination", "should fail if destination is a directory")

	err = Copy(src, filepath.Join(dir, "missing_dir", "dst.png"))
	assert.ErrorContains(t, err, "Open destination", "should fail if destination parent does not exist")
}

func TestCopySameFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "base.css")
	assert.NoError(t, os.WriteFile(src, []byte("body { margin: 0; }"), 0644), "should write source file")

	err := Copy(src, src)
	var sameErr SameFileError
	assert.True(t, errors.As(err, &sameErr), "should return SameFileError for equal paths")
	assert.Exactly(t, src, sameErr.Path, "should hold source path")

	link := filepath.Join(dir, "link.css")
	assert.NoError(t, os.Symlink(src, link), "should create symlink")
	err = Copy(src, link)
	assert.ErrorContains(t, err, "Source and destination are the same file", "should detect symlinked destination")

	content, err := os.ReadFile(src)
	assert.NoError(t, err, "should read source file")
	assert.Exactly(t, "body { margin: 0; }", string(content), "should keep source content")
}

func TestCopyAccessTime(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("access time is only preserved on linux")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "src.csv")
	dst := filepath.Join(dir, "dst.csv")

	accessed := time.Date(2022, 6, 1, 9, 0, 0, 0, time.UTC)
	modified := time.Date(2022, 5, 1, 9, 0, 0, 0, time.UTC)
	assert.NoError(t, os.WriteFile(src, []byte("id,name"), 0644), "should write source file")
	assert.NoError(t, os.Chtimes(src, accessed, modified), "should set source times")

	assert.NoError(t, Copy(src, dst), "should not return error")

	info, err := os.Stat(dst)
	assert.NoError(t, err, "should stat copied file")
	assert.True(t, accessTime(info).Equal(accessed), "should preserve access time")
	assert.True(t, info.ModTime().Equal(modified), "should preserve modification time")
}
