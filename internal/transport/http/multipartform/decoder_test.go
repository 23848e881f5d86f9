package multipartform_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/transport/http/multipartform"
	pkgerrors "github.com/ankitkandwal-git/publication-Research-Journal/pkg/errors"
)

func multipartBody(t *testing.T, field, fileName, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
		if mimeType != "" {
			h.Set("Content-Type", mimeType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestDecodeFile_Success(t *testing.T) {
	body, contentType := multipartBody(t, "certificate", "degree.pdf", "application/pdf", []byte("pdf-bytes"))

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	asset, err := multipartform.DecodeFile(req, multipartform.FileField, 5<<20)
	require.NoError(t, err)
	require.NotNil(t, asset)

	assert.Equal(t, "degree.pdf", asset.OriginalName)
	assert.Equal(t, "application/pdf", asset.MimeType)
	assert.Equal(t, int64(len("pdf-bytes")), asset.SizeBytes)
	assert.Equal(t, []byte("pdf-bytes"), asset.Content)
}

func TestDecodeFile_MissingPartIsNotAnError(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("notes", "hello"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	asset, err := multipartform.DecodeFile(req, multipartform.FileField, 5<<20)
	require.NoError(t, err)
	assert.Nil(t, asset)
}

func TestDecodeFile_PayloadTooLarge(t *testing.T) {
	content := bytes.Repeat([]byte("a"), 64)
	body, contentType := multipartBody(t, "certificate", "big.bin", "application/octet-stream", content)

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	asset, err := multipartform.DecodeFile(req, multipartform.FileField, 32)
	assert.Nil(t, asset)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrPayloadTooLarge))
}

func TestDecodeFile_AtTheCeilingStillDecodes(t *testing.T) {
	content := bytes.Repeat([]byte("a"), 32)
	body, contentType := multipartBody(t, "certificate", "exact.bin", "", content)

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	asset, err := multipartform.DecodeFile(req, multipartform.FileField, 32)
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, int64(32), asset.SizeBytes)
	assert.Equal(t, "application/octet-stream", asset.MimeType)
}

func TestDecodeFile_NotMultipart(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/upload", strings.NewReader(`{"certificate": true}`))
	req.Header.Set("Content-Type", "application/json")

	asset, err := multipartform.DecodeFile(req, multipartform.FileField, 5<<20)
	assert.Nil(t, asset)
	assert.Error(t, err)
}

func TestDecodeFile_SkipsOtherFileFields(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	other, err := w.CreateFormFile("avatar", "face.png")
	require.NoError(t, err)
	_, err = other.Write([]byte("png"))
	require.NoError(t, err)

	cert, err := w.CreateFormFile("certificate", "degree.png")
	require.NoError(t, err)
	_, err = cert.Write([]byte("cert"))
	require.NoError(t, err)

	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	asset, err := multipartform.DecodeFile(req, multipartform.FileField, 5<<20)
	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.Equal(t, "degree.png", asset.OriginalName)
	assert.Equal(t, []byte("cert"), asset.Content)
}
