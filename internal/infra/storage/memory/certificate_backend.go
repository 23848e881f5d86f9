package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
)

// CertificateBackend is the ephemeral storage variant: it acknowledges an
// upload with synthesized metadata but never writes the bytes anywhere.
// Once the response is sent the content is gone. It exists for deployments
// that have no durable-store credentials.
type CertificateBackend struct {
	now func() time.Time
}

func NewCertificateBackend() *CertificateBackend {
	return &CertificateBackend{now: time.Now}
}

func (b *CertificateBackend) Store(ctx context.Context, asset entity.FileAsset) (entity.StoredCertificate, error) {
	if err := ctx.Err(); err != nil {
		return entity.StoredCertificate{}, err
	}

	return entity.StoredCertificate{
		FileName: fmt.Sprintf("%d-%s", b.now().UnixMilli(), asset.OriginalName),
		Bytes:    asset.SizeBytes,
		MimeType: asset.MimeType,
	}, nil
}

// List always returns an empty listing: nothing survives the request that
// uploaded it.
func (b *CertificateBackend) List(ctx context.Context) ([]entity.StoredCertificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []entity.StoredCertificate{}, nil
}
