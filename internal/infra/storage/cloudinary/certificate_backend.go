package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
	pkgerrors "github.com/ankitkandwal-git/publication-Research-Journal/pkg/errors"
)

// maxListResults bounds each per-partition listing query. There is no
// pagination beyond this bound.
const maxListResults = 100

// Cloudinary partitions uploads by resource type, so a full listing has to
// query each partition separately and merge.
var assetTypes = []api.AssetType{api.Image, api.File}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// CertificateBackend stores certificates in Cloudinary under a folder
// prefix and lists everything stored there before.
type CertificateBackend struct {
	cld    *cloudinary.Cloudinary
	folder string
	now    func() time.Time
}

func NewCertificateBackend(cloudName, apiKey, apiSecret, folder string) (*CertificateBackend, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}

	return &CertificateBackend{
		cld:    cld,
		folder: folder,
		now:    time.Now,
	}, nil
}

// Store streams the decoded buffer to Cloudinary with content-type
// auto-detection. The public id is the upload instant in epoch milliseconds
// joined to the sanitized original name, so ids of concurrent uploads stay
// distinct unless two same-named files land in the same millisecond.
func (b *CertificateBackend) Store(ctx context.Context, asset entity.FileAsset) (entity.StoredCertificate, error) {
	publicID := fmt.Sprintf("%d-%s", b.now().UnixMilli(), sanitizeName(asset.OriginalName))

	res, err := b.cld.Upload.Upload(ctx, bytes.NewReader(asset.Content), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       b.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return entity.StoredCertificate{}, &pkgerrors.StorageError{Op: "upload", Err: err}
	}
	if res.Error.Message != "" {
		return entity.StoredCertificate{}, &pkgerrors.StorageError{Op: "upload", Err: errors.New(res.Error.Message)}
	}

	return entity.StoredCertificate{
		FileName:     asset.OriginalName,
		URL:          res.SecureURL,
		PublicID:     res.PublicID,
		ResourceType: res.ResourceType,
		Bytes:        int64(res.Bytes),
		Format:       res.Format,
		MimeType:     asset.MimeType,
	}, nil
}

// List queries every resource-type partition under the folder prefix and
// returns the merged, unordered result. A failure against either partition
// aborts the whole listing; partial results are never returned.
func (b *CertificateBackend) List(ctx context.Context) ([]entity.StoredCertificate, error) {
	var merged []entity.StoredCertificate

	for _, assetType := range assetTypes {
		res, err := b.cld.Admin.Assets(ctx, admin.AssetsParams{
			AssetType:    assetType,
			DeliveryType: "upload",
			Prefix:       b.folder + "/",
			MaxResults:   maxListResults,
		})
		if err != nil {
			return nil, &pkgerrors.StorageError{Op: "list " + string(assetType), Err: err}
		}
		if res.Error.Message != "" {
			return nil, &pkgerrors.StorageError{Op: "list " + string(assetType), Err: errors.New(res.Error.Message)}
		}

		for _, a := range res.Assets {
			merged = append(merged, entity.StoredCertificate{
				FileName:     displayFileName(a.PublicID, a.Format),
				URL:          a.SecureURL,
				PublicID:     a.PublicID,
				ResourceType: a.AssetType,
				Bytes:        int64(a.Bytes),
				Format:       a.Format,
			})
		}
	}

	return merged, nil
}

func sanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// displayFileName derives a human-readable name from a public id: its last
// path segment plus the detected format, when Cloudinary reports one.
func displayFileName(publicID, format string) string {
	name := publicID
	if i := strings.LastIndex(publicID, "/"); i >= 0 {
		name = publicID[i+1:]
	}
	if format == "" {
		return name
	}
	return name + "." + format
}
