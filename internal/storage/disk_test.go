package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediagate/service/internal/media"
)

func TestNewDiskCreatesFolders(t *testing.T) {
	root := t.TempDir()

	_, err := NewDisk(root)
	require.NoError(t, err)

	for _, folder := range media.Folders() {
		info, err := os.Stat(filepath.Join(root, string(folder)))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}

	// Re-initializing over an existing root must not fail.
	_, err = NewDisk(root)
	require.NoError(t, err)
}

func TestDiskRoundTrip(t *testing.T) {
	root := t.TempDir()
	d, err := NewDisk(root)
	require.NoError(t, err)

	ctx := context.Background()
	name := media.NewFileName("photo.png")
	content := []byte("fake png bytes")

	size, err := d.Save(ctx, media.FolderMedia, name, bytes.NewReader(content))
	require.NoError(t, err)
	require.Equal(t, int64(len(content)), size)

	rc, err := d.Open(ctx, media.FolderMedia, name)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, content, got)

	// The same name in the other folder does not exist.
	_, err = d.Open(ctx, media.FolderMediaDev, name)
	require.ErrorIs(t, err, media.ErrNotFound)

	require.NoError(t, d.Remove(ctx, media.FolderMedia, name))

	_, err = d.Open(ctx, media.FolderMedia, name)
	require.ErrorIs(t, err, media.ErrNotFound)

	err = d.Remove(ctx, media.FolderMedia, name)
	require.ErrorIs(t, err, media.ErrNotFound)
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	copy(p, "partial")
	return 7, errors.New("source broke")
}

func TestDiskSaveFailureLeavesNoFile(t *testing.T) {
	root := t.TempDir()
	d, err := NewDisk(root)
	require.NoError(t, err)

	name := media.NewFileName("big.mp4")
	_, err = d.Save(context.Background(), media.FolderMedia, name, failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(root, string(media.FolderMedia)))
	require.NoError(t, err)
	require.Empty(t, entries, "failed upload must not leave files behind")
}

func TestDiskRejectsEscapingNames(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	for _, raw := range []string{"../escape", "..", "a/b", `..\escape`} {
		name := media.FileName(raw)

		_, err := d.Save(ctx, media.FolderMedia, name, bytes.NewReader(nil))
		requireInvalidName(t, err, raw)

		_, err = d.Open(ctx, media.FolderMedia, name)
		requireInvalidName(t, err, raw)

		err = d.Remove(ctx, media.FolderMedia, name)
		requireInvalidName(t, err, raw)
	}
}

func TestDiskRejectsUnknownFolder(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	_, err = d.Open(context.Background(), media.Folder("uploads"), media.FileName("x.png"))
	var ve *media.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "invalid_folder", ve.Code)
}

func requireInvalidName(t *testing.T, err error, raw string) {
	t.Helper()
	var ve *media.ValidationError
	require.ErrorAs(t, err, &ve, "raw=%q", raw)
	require.Equal(t, "invalid_file_name", ve.Code, "raw=%q", raw)
}
