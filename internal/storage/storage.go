// Package storage provides the blob storage drivers behind the gateway.
// The disk driver is the default; the S3 driver works with any S3-compatible
// provider (MinIO, ArvanCloud, AWS S3). Swap drivers via STORAGE_DRIVER —
// no code changes are needed.
package storage

import (
	"fmt"

	"github.com/mediagate/service/internal/config"
	"github.com/mediagate/service/internal/media"
)

// New builds the blob storage driver selected by cfg.StorageDriver.
func New(cfg *config.Config) (media.BlobStorage, error) {
	switch cfg.StorageDriver {
	case "", config.DriverDisk:
		return NewDisk(cfg.StorageRoot)
	case config.DriverS3:
		return NewMinio(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StorageUseSSL,
		)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
