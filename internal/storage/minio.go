package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mediagate/service/internal/media"
)

// Minio implements media.BlobStorage on a MinIO (or any S3-compatible)
// backend. Objects are keyed "<folder>/<fileName>", matching the gateway's
// URL layout so a CDN can be pointed straight at the bucket.
type Minio struct {
	client *minio.Client
	bucket string
}

var _ media.BlobStorage = (*Minio)(nil)

// NewMinio creates a MinIO client, ensures the bucket exists with a
// public-read policy, and returns a ready-to-use driver.
func NewMinio(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return &Minio{client: client, bucket: bucket}, nil
}

// key re-validates both segments and joins them into the object key. The
// validation mirrors the disk driver so no driver trusts its callers.
func (m *Minio) key(folder media.Folder, name media.FileName) (string, error) {
	f, err := media.ParseFolder(string(folder))
	if err != nil {
		return "", err
	}
	n, err := media.ParseFileName(string(name))
	if err != nil {
		return "", err
	}
	return string(f) + "/" + string(n), nil
}

// Save streams src to the bucket. The size is unknown up front, so the
// client buffers into multipart chunks.
func (m *Minio) Save(ctx context.Context, folder media.Folder, name media.FileName, src io.Reader) (int64, error) {
	key, err := m.key(folder, name)
	if err != nil {
		return 0, err
	}
	info, err := m.client.PutObject(ctx, m.bucket, key, src, -1, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return 0, fmt.Errorf("put object %q: %w", key, err)
	}
	return info.Size, nil
}

// Open returns the object body, or media.ErrNotFound if the key is absent.
// GetObject defers errors until the first read, so existence is checked
// explicitly first.
func (m *Minio) Open(ctx context.Context, folder media.Folder, name media.FileName) (io.ReadCloser, error) {
	key, err := m.key(folder, name)
	if err != nil {
		return nil, err
	}
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil, media.ErrNotFound
		}
		return nil, fmt.Errorf("stat object %q: %w", key, err)
	}
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return obj, nil
}

// Remove deletes the object, or returns media.ErrNotFound if it was already
// gone. RemoveObject alone succeeds silently on missing keys, hence the
// explicit existence check.
func (m *Minio) Remove(ctx context.Context, folder media.Folder, name media.FileName) error {
	key, err := m.key(folder, name)
	if err != nil {
		return err
	}
	if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return media.ErrNotFound
		}
		return fmt.Errorf("stat object %q: %w", key, err)
	}
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
