package media

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment("production")
	require.NoError(t, err)
	require.Equal(t, Production, env)

	env, err = ParseEnvironment("development")
	require.NoError(t, err)
	require.Equal(t, Development, env)
}

func TestParseEnvironmentRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"staging", "PRODUCTION", " production", "prod", ""} {
		_, err := ParseEnvironment(raw)
		require.Error(t, err, "raw=%q", raw)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "raw=%q", raw)
		require.Equal(t, "invalid_environment", ve.Code)
	}
}

func TestEnvironmentFolder(t *testing.T) {
	require.Equal(t, FolderMedia, Production.Folder())
	require.Equal(t, FolderMediaDev, Development.Folder())
	require.Equal(t, FolderMediaDev, DefaultEnvironment.Folder())
}

func TestParseFolder(t *testing.T) {
	folder, err := ParseFolder("media")
	require.NoError(t, err)
	require.Equal(t, FolderMedia, folder)

	folder, err = ParseFolder("media-dev")
	require.NoError(t, err)
	require.Equal(t, FolderMediaDev, folder)
}

func TestParseFolderRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "Media", "uploads", "media/..", "media-dev2"} {
		_, err := ParseFolder(raw)
		require.Error(t, err, "raw=%q", raw)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "raw=%q", raw)
		require.Equal(t, "invalid_folder", ve.Code)
	}
}

func TestFolders(t *testing.T) {
	require.Equal(t, []Folder{FolderMedia, FolderMediaDev}, Folders())
}
