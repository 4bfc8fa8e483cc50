package media_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mediagate/service/internal/media"
)

// stubStore lets service tests script storage outcomes without a filesystem.
type stubStore struct {
	saveErr   error
	openErr   error
	removeErr error

	saveCalled bool
}

func (s *stubStore) Save(_ context.Context, _ media.Folder, _ media.FileName, src io.Reader) (int64, error) {
	s.saveCalled = true
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	return io.Copy(io.Discard, src)
}

func (s *stubStore) Open(context.Context, media.Folder, media.FileName) (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	return io.NopCloser(strings.NewReader("data")), nil
}

func (s *stubStore) Remove(context.Context, media.Folder, media.FileName) error {
	return s.removeErr
}

func TestServiceUploadValidatesBeforeStorage(t *testing.T) {
	store := &stubStore{}
	svc := media.NewService(store, "https://cdn.example.com")

	_, err := svc.Upload(context.Background(), media.UploadRequest{
		Source:       strings.NewReader("x"),
		OriginalName: "x.png",
		Environment:  "qa",
	})

	var ve *media.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "invalid_environment", ve.Code)
	require.False(t, store.saveCalled, "invalid input must never reach storage")
}

func TestServiceUploadReturnsStoredFile(t *testing.T) {
	svc := media.NewService(&stubStore{}, "https://cdn.example.com")

	stored, err := svc.Upload(context.Background(), media.UploadRequest{
		Source:       strings.NewReader("hello"),
		OriginalName: "greeting.txt",
		Environment:  "production",
	})
	require.NoError(t, err)

	require.Equal(t, media.Production, stored.Environment)
	require.Equal(t, media.FolderMedia, stored.Folder)
	require.Equal(t, int64(5), stored.Size)
	require.True(t, strings.HasSuffix(string(stored.Name), ".txt"))
	require.Equal(t, "https://cdn.example.com/media/"+string(stored.Name), stored.URL)
}

func TestServiceDeleteKeepsNotFoundSentinel(t *testing.T) {
	svc := media.NewService(&stubStore{removeErr: media.ErrNotFound}, "https://cdn.example.com")

	err := svc.Delete(context.Background(), "media", "gone.png")
	require.ErrorIs(t, err, media.ErrNotFound)
}

func TestServiceRejectsBadPathSegments(t *testing.T) {
	store := &stubStore{}
	svc := media.NewService(store, "https://cdn.example.com")
	ctx := context.Background()

	var ve *media.ValidationError

	err := svc.Delete(ctx, "media", "../x")
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "invalid_file_name", ve.Code)

	_, err = svc.Retrieve(ctx, "attic", "x.png")
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "invalid_folder", ve.Code)
}

func TestServiceFileURLNormalizesBase(t *testing.T) {
	for _, base := range []string{
		"https://cdn.example.com",
		"https://cdn.example.com/",
		"https://cdn.example.com///",
	} {
		svc := media.NewService(&stubStore{}, base)
		url := svc.FileURL(media.FolderMedia, media.FileName("a.txt"))
		require.Equal(t, "https://cdn.example.com/media/a.txt", url, "base=%q", base)
	}
}
