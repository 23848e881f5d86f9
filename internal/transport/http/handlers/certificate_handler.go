package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ankitkandwal-git/publication-Research-Journal/internal/domain/entity"
	"github.com/ankitkandwal-git/publication-Research-Journal/internal/transport/http/multipartform"
	pkgerrors "github.com/ankitkandwal-git/publication-Research-Journal/pkg/errors"
	"github.com/ankitkandwal-git/publication-Research-Journal/pkg/http_server/mw"
	pkgjson "github.com/ankitkandwal-git/publication-Research-Journal/pkg/json"
)

type uploadResponse struct {
	Message      string `json:"message"`
	FileName     string `json:"fileName"`
	URL          string `json:"url,omitempty"`
	PublicID     string `json:"publicId,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
	Bytes        int64  `json:"bytes,omitempty"`
	Format       string `json:"format,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
	Note         string `json:"note,omitempty"`
}

type certificateDTO struct {
	FileName     string `json:"fileName"`
	URL          string `json:"url,omitempty"`
	PublicID     string `json:"publicId,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
	Bytes        int64  `json:"bytes"`
	Format       string `json:"format,omitempty"`
	MimeType     string `json:"mimeType,omitempty"`
}

type listResponse struct {
	Items []certificateDTO `json:"items"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

const ephemeralNote = "File received in memory. Integrate cloud storage for persistence."

func (h *HTTPHandlers) UploadCertificate(w http.ResponseWriter, r *http.Request) {
	asset, err := multipartform.DecodeFile(r, multipartform.FileField, entity.MaxFileSize)
	if err != nil {
		logWarn(r.Context(), "decoding upload", err)
		pkgjson.Write(w, http.StatusBadRequest, messageResponse{Message: "Upload failed", Error: err.Error()})
		return
	}
	if asset == nil {
		pkgjson.Write(w, http.StatusBadRequest, messageResponse{Message: "Please upload a file."})
		return
	}

	stored, err := h.Certificates.Upload(r.Context(), *asset)
	if err != nil {
		h.writeStorageFailure(w, r, "Upload failed", err)
		return
	}

	resp := uploadResponse{
		Message:  "File uploaded successfully!",
		FileName: stored.FileName,
		MimeType: stored.MimeType,
	}
	if stored.URL == "" {
		// Ephemeral backend: the bytes are already gone.
		resp.FileSize = stored.Bytes
		resp.Note = ephemeralNote
	} else {
		resp.URL = stored.URL
		resp.PublicID = stored.PublicID
		resp.ResourceType = stored.ResourceType
		resp.Bytes = stored.Bytes
		resp.Format = stored.Format
	}

	pkgjson.Write(w, http.StatusOK, resp)
}

func (h *HTTPHandlers) ListCertificates(w http.ResponseWriter, r *http.Request) {
	items, err := h.Certificates.List(r.Context())
	if err != nil {
		h.writeStorageFailure(w, r, "Failed to list certificates", err)
		return
	}

	resp := listResponse{Items: make([]certificateDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, certificateDTO{
			FileName:     item.FileName,
			URL:          item.URL,
			PublicID:     item.PublicID,
			ResourceType: item.ResourceType,
			Bytes:        item.Bytes,
			Format:       item.Format,
			MimeType:     item.MimeType,
		})
	}

	pkgjson.Write(w, http.StatusOK, resp)
}

func (h *HTTPHandlers) writeStorageFailure(w http.ResponseWriter, r *http.Request, message string, err error) {
	logError(r.Context(), message, err)

	var confErr *pkgerrors.ConfigurationError
	if errors.As(err, &confErr) {
		pkgjson.Write(w, http.StatusInternalServerError, messageResponse{
			Message: "Cloud storage not configured",
			Hint:    confErr.Hint,
		})
		return
	}

	pkgjson.Write(w, http.StatusInternalServerError, messageResponse{Message: message, Error: err.Error()})
}

func logWarn(ctx context.Context, msg string, err error) {
	slog.Warn(msg, logArgs(ctx, err)...)
}

func logError(ctx context.Context, msg string, err error) {
	slog.Error(msg, logArgs(ctx, err)...)
}

func logArgs(ctx context.Context, err error) []any {
	args := []any{"error", err}
	if md := mw.MetadataFromContext(ctx); md != nil {
		args = append(args, "request_id", md.RequestID)
	}
	return args
}
