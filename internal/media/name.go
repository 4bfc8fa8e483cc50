package media

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileName is a storage name that is safe to join under a folder. Values are
// produced only by NewFileName (for fresh uploads) or ParseFileName (for
// untrusted path segments); raw strings never cross the storage boundary.
type FileName string

// NewFileName mints a unique storage name for an uploaded file: a random
// UUID v4 token plus the extension of the client-supplied original name.
// The original name contributes nothing else.
func NewFileName(originalName string) FileName {
	return FileName(uuid.NewString() + filepath.Ext(originalName))
}

// ParseFileName validates an untrusted name path segment. Anything that
// could change the joined path's directory is rejected rather than cleaned.
func ParseFileName(raw string) (FileName, error) {
	if raw == "" || raw == "." || raw == ".." ||
		strings.ContainsAny(raw, `/\`) || strings.ContainsRune(raw, 0) {
		return "", &ValidationError{
			Code:    "invalid_file_name",
			Message: "file name must not be empty or contain path separators or parent references",
		}
	}
	return FileName(raw), nil
}
