package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mediagate/service/internal/media"
)

// Disk stores files on the local filesystem under one subdirectory per folder.
type Disk struct {
	root string
}

var _ media.BlobStorage = (*Disk)(nil)

// NewDisk resolves root to an absolute path and creates the folder
// subdirectories if they do not exist yet.
func NewDisk(root string) (*Disk, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root %q: %w", root, err)
	}
	for _, folder := range media.Folders() {
		dir := filepath.Join(abs, string(folder))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
		}
	}
	return &Disk{root: abs}, nil
}

// resolve maps folder and name to an on-disk path. Both segments are
// re-validated here so the check holds even for callers that bypass the
// service layer, and the joined path must stay directly inside the folder
// directory.
func (d *Disk) resolve(folder media.Folder, name media.FileName) (string, error) {
	f, err := media.ParseFolder(string(folder))
	if err != nil {
		return "", err
	}
	n, err := media.ParseFileName(string(name))
	if err != nil {
		return "", err
	}
	dir := filepath.Join(d.root, string(f))
	path := filepath.Join(dir, string(n))
	if filepath.Dir(path) != dir {
		return "", &media.ValidationError{
			Code:    "invalid_file_name",
			Message: "file name escapes its storage folder",
		}
	}
	return path, nil
}

// Save writes src to a temporary file in the target directory and renames it
// into place, so a failed upload never leaves a partial file under its final
// name.
func (d *Disk) Save(_ context.Context, folder media.Folder, name media.FileName, src io.Reader) (int64, error) {
	path, err := d.resolve(folder, name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "upload-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(tmp, src)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("move %q into place: %w", path, err)
	}
	return n, nil
}

// Open returns the stored file for reading, or media.ErrNotFound if it does
// not exist.
func (d *Disk) Open(_ context.Context, folder media.Folder, name media.FileName) (io.ReadCloser, error) {
	path, err := d.resolve(folder, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, media.ErrNotFound
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return f, nil
}

// Remove deletes the stored file, or returns media.ErrNotFound if it was
// already gone.
func (d *Disk) Remove(_ context.Context, folder media.Folder, name media.FileName) error {
	path, err := d.resolve(folder, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return media.ErrNotFound
		}
		return fmt.Errorf("remove %q: %w", path, err)
	}
	return nil
}
