package media

import (
	"context"
	"io"
)

// BlobStorage is the backend the gateway keeps file content in. The disk
// implementation is the default; an S3-compatible implementation exists for
// object-storage deployments. Implementations must be safe for concurrent
// use and must accept only the typed Folder and FileName values.
type BlobStorage interface {
	// Save streams src into the file identified by folder and name and
	// returns the number of bytes written. The name is server-generated and
	// effectively unique, so concurrent saves never target the same path.
	Save(ctx context.Context, folder Folder, name FileName, src io.Reader) (int64, error)

	// Open opens the stored file for reading. Returns ErrNotFound when the
	// file does not exist; opening is also the existence check, so a reader
	// racing a concurrent delete observes a clean miss.
	Open(ctx context.Context, folder Folder, name FileName) (io.ReadCloser, error)

	// Remove deletes the stored file. Returns ErrNotFound when the file is
	// already gone, which callers treat as a defined outcome, not a failure.
	Remove(ctx context.Context, folder Folder, name FileName) error
}
