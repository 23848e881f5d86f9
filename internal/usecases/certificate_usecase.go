package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/ports"
)

const (
	defaultStoreTimeout = 15 * time.Second
	defaultListTimeout  = 10 * time.Second
)

// CertificateUseCase orchestrates the configured storage backend: uploads go
// straight through with a bounded timeout, listings are fetched and put into
// a stable newest-first order.
type CertificateUseCase struct {
	Storage ports.StorageBackend

	storeTimeout time.Duration
	listTimeout  time.Duration
}

type Option func(*CertificateUseCase)

func NewCertificateUseCase(storage ports.StorageBackend, options ...Option) *CertificateUseCase {
	u := &CertificateUseCase{
		Storage:      storage,
		storeTimeout: defaultStoreTimeout,
		listTimeout:  defaultListTimeout,
	}

	for _, option := range options {
		option(u)
	}

	return u
}

func WithStoreTimeout(d time.Duration) Option {
	return func(u *CertificateUseCase) {
		if d > 0 {
			u.storeTimeout = d
		}
	}
}

func WithListTimeout(d time.Duration) Option {
	return func(u *CertificateUseCase) {
		if d > 0 {
			u.listTimeout = d
		}
	}
}

func (u *CertificateUseCase) Upload(rCtx context.Context, asset entity.FileAsset) (entity.StoredCertificate, error) {
	ctx, cancel := context.WithTimeout(rCtx, u.storeTimeout)
	defer cancel()

	return u.Storage.Store(ctx, asset)
}

// List fetches every stored certificate and sorts by public id descending.
// Ids are epoch-millisecond-prefixed, so plain string comparison puts newer
// uploads first while the timestamps keep their current digit width; records
// without a public id (ephemeral ones never reach this path) sort last. The
// sort is stable, so equal ids keep their backend order.
func (u *CertificateUseCase) List(rCtx context.Context) ([]entity.StoredCertificate, error) {
	ctx, cancel := context.WithTimeout(rCtx, u.listTimeout)
	defer cancel()

	items, err := u.Storage.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublicID > items[j].PublicID
	})

	return items, nil
}
