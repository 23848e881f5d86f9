package multipartform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
	pkgerrors "github.com/ankitkandwal-git/publication-Research-Journal/pkg/errors"
)

// FileField is the form field the client submits the certificate under.
const FileField = "certificate"

// DecodeFile streams the first file part named field into memory, counting
// bytes as it reads. Crossing maxSize aborts the decode and discards the
// partial buffer. An absent part is not an error: the result is simply nil,
// which the caller turns into its own validation failure.
//
// The declared filename and content type are trusted as sent; nothing is
// sniffed server-side.
func DecodeFile(r *http.Request, field string, maxSize int64) (*entity.FileAsset, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("read multipart body: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart part: %w", err)
		}

		if part.FormName() != field || part.FileName() == "" {
			part.Close()
			continue
		}

		lr := &io.LimitedReader{R: part, N: maxSize + 1}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(lr)
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("read file part: %w", err)
		}
		if int64(buf.Len()) > maxSize {
			return nil, fmt.Errorf("%w: %q exceeds the %d byte limit", pkgerrors.ErrPayloadTooLarge, part.FileName(), maxSize)
		}

		mimeType := part.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		data := buf.Bytes()
		return &entity.FileAsset{
			OriginalName: part.FileName(),
			MimeType:     mimeType,
			SizeBytes:    int64(len(data)),
			Content:      data,
		}, nil
	}
}
