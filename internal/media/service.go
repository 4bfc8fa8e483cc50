package media

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Service contains the business logic for the storage gateway: resolving
// environments, minting names, and moving bytes through the blob storage.
type Service struct {
	store      BlobStorage
	publicBase string
}

// NewService creates a new media Service. publicBase is the origin clients
// fetch files from, e.g. "https://cdn.example.com".
func NewService(store BlobStorage, publicBase string) *Service {
	return &Service{store: store, publicBase: strings.TrimRight(publicBase, "/")}
}

// UploadRequest is the single typed value the transport boundary produces
// for both upload encodings before any core logic runs.
type UploadRequest struct {
	// Source yields the raw file bytes.
	Source io.Reader
	// OriginalName is the client-declared file name; only its extension
	// survives into the stored name.
	OriginalName string
	// Environment is the raw client value; empty means DefaultEnvironment.
	Environment string
}

// StoredFile describes a file the gateway has accepted.
type StoredFile struct {
	Name        FileName
	Environment Environment
	Folder      Folder
	Size        int64
	URL         string
}

// Upload resolves the target environment, mints a unique name, and streams
// the request source into storage. Validation failures are returned as
// *ValidationError; storage failures are wrapped with their location.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*StoredFile, error) {
	raw := req.Environment
	if raw == "" {
		raw = string(DefaultEnvironment)
	}
	env, err := ParseEnvironment(raw)
	if err != nil {
		return nil, err
	}

	folder := env.Folder()
	name := NewFileName(req.OriginalName)

	size, err := s.store.Save(ctx, folder, name, req.Source)
	if err != nil {
		return nil, fmt.Errorf("save %s/%s: %w", folder, name, err)
	}

	return &StoredFile{
		Name:        name,
		Environment: env,
		Folder:      folder,
		Size:        size,
		URL:         s.FileURL(folder, name),
	}, nil
}

// Retrieve validates the client-supplied folder and name and opens the
// stored file. The caller owns the returned reader.
func (s *Service) Retrieve(ctx context.Context, rawFolder, rawName string) (io.ReadCloser, error) {
	folder, name, err := parsePath(rawFolder, rawName)
	if err != nil {
		return nil, err
	}
	rc, err := s.store.Open(ctx, folder, name)
	if err != nil {
		return nil, fmt.Errorf("open %s/%s: %w", folder, name, err)
	}
	return rc, nil
}

// Delete validates the client-supplied folder and name and removes the
// stored file. Deleting a file that is already gone returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, rawFolder, rawName string) error {
	folder, name, err := parsePath(rawFolder, rawName)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, folder, name); err != nil {
		return fmt.Errorf("remove %s/%s: %w", folder, name, err)
	}
	return nil
}

// FileURL returns the public URL a stored file is served from.
func (s *Service) FileURL(folder Folder, name FileName) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBase, folder, name)
}

// parsePath validates the two untrusted path segments of a retrieval or
// deletion request.
func parsePath(rawFolder, rawName string) (Folder, FileName, error) {
	folder, err := ParseFolder(rawFolder)
	if err != nil {
		return "", "", err
	}
	name, err := ParseFileName(rawName)
	if err != nil {
		return "", "", err
	}
	return folder, name, nil
}
