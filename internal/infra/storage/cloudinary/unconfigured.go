package cloudinary

import (
	"context"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
	pkgerrors "github.com/ankitkandwal-git/publication-Research-Journal/pkg/errors"
)

// ConfigHint tells the operator how to complete the credential triple.
const ConfigHint = "Set CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET in the environment."

// Unconfigured stands in for the durable backend when the deployment asked
// for Cloudinary but the credential triple is incomplete. Every operation
// fails immediately, before any network call, so a half-configured
// deployment is never silently downgraded to the ephemeral variant.
type Unconfigured struct{}

func (Unconfigured) Store(ctx context.Context, asset entity.FileAsset) (entity.StoredCertificate, error) {
	return entity.StoredCertificate{}, &pkgerrors.ConfigurationError{Hint: ConfigHint}
}

func (Unconfigured) List(ctx context.Context) ([]entity.StoredCertificate, error) {
	return nil, &pkgerrors.ConfigurationError{Hint: ConfigHint}
}
