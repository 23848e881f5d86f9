package entity

// MaxFileSize is the hard ceiling for a single uploaded certificate.
const MaxFileSize = int64(5 << 20) // 5 MiB

// FileAsset is one decoded upload. It is owned by the request that decoded
// it and is never shared across invocations.
type FileAsset struct {
	OriginalName string
	MimeType     string
	SizeBytes    int64
	Content      []byte
}

// StoredCertificate is the record a storage backend returns for a persisted
// (or, for the ephemeral backend, acknowledged) certificate. URL, PublicID,
// ResourceType and Format are populated only by the durable backend.
type StoredCertificate struct {
	FileName     string
	URL          string
	PublicID     string
	ResourceType string
	Bytes        int64
	Format       string
	MimeType     string
}
