package media

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewFileNameKeepsOnlyExtension(t *testing.T) {
	cases := []struct {
		original string
		wantExt  string
	}{
		{"photo.png", ".png"},
		{"archive.tar.gz", ".gz"},
		{"noextension", ""},
		{"trailing.", "."},
		{".env", ".env"},
		{"../../etc/evil.sh", ".sh"},
	}

	for _, tc := range cases {
		name := string(NewFileName(tc.original))
		require.True(t, strings.HasSuffix(name, tc.wantExt), "original=%q name=%q", tc.original, name)

		token := strings.TrimSuffix(name, tc.wantExt)
		require.Len(t, token, 36, "original=%q name=%q", tc.original, name)
		require.NoError(t, uuid.Validate(token), "original=%q name=%q", tc.original, name)
	}
}

func TestNewFileNameNeverEchoesOriginalPath(t *testing.T) {
	name := string(NewFileName("../../etc/passwd"))
	require.NotContains(t, name, "/")
	require.NotContains(t, name, "..")
	require.NotContains(t, name, "passwd")

	_, err := ParseFileName(name)
	require.NoError(t, err)
}

func TestNewFileNameIsUnique(t *testing.T) {
	const n = 10_000
	seen := make(map[FileName]struct{}, n)
	for i := 0; i < n; i++ {
		seen[NewFileName("file.bin")] = struct{}{}
	}
	require.Len(t, seen, n)
}

func TestParseFileName(t *testing.T) {
	for _, raw := range []string{"a1b2.png", "550e8400-e29b-41d4-a716-446655440000.txt", "no-extension"} {
		name, err := ParseFileName(raw)
		require.NoError(t, err, "raw=%q", raw)
		require.Equal(t, FileName(raw), name)
	}
}

func TestParseFileNameRejectsUnsafe(t *testing.T) {
	for _, raw := range []string{"", ".", "..", "a/b.png", `a\b.png`, "dir/../x", "../secret", "nul\x00byte"} {
		_, err := ParseFileName(raw)
		require.Error(t, err, "raw=%q", raw)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "raw=%q", raw)
		require.Equal(t, "invalid_file_name", ve.Code)
	}
}
