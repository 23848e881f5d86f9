package ports

import (
	"context"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
)

//go:generate mockgen -source=storage_backend.go -destination=mocks/storage_backend.go -package=mocks

// StorageBackend persists uploaded certificates and lists what was persisted
// before. The ephemeral variant keeps no history and lists nothing.
type StorageBackend interface {
	Store(ctx context.Context, asset entity.FileAsset) (entity.StoredCertificate, error)
	List(ctx context.Context) ([]entity.StoredCertificate, error)
}
