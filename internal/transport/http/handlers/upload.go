package http_handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/baechuer/leads-api/internal/application/leadimport"
	"github.com/baechuer/leads-api/internal/domain"
	"github.com/baechuer/leads-api/internal/logger"
	"github.com/baechuer/leads-api/internal/transport/http/dto"
	"github.com/baechuer/leads-api/internal/transport/http/middleware"
	"github.com/baechuer/leads-api/internal/transport/http/response"
)

const (
	uploadField = "file"
	// room for the multipart envelope around the file itself
	multipartOverhead = 1 << 20
)

type LeadImporter interface {
	Import(ctx context.Context, up leadimport.Upload) (leadimport.Result, error)
}

type UploadHandler struct {
	importer LeadImporter
	maxBytes int64
}

func NewUploadHandler(importer LeadImporter, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &UploadHandler{importer: importer, maxBytes: maxBytes}
}

// Upload handles POST /leads/upload (multipart, field "file").
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	file, hdr, err := r.FormFile(uploadField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.WriteError(w, r, domain.ErrFileTooLarge(h.maxBytes))
			return
		}
		response.WriteError(w, r, domain.ErrFileMissing())
		return
	}
	defer file.Close()

	if hdr.Size > h.maxBytes {
		response.WriteError(w, r, domain.ErrFileTooLarge(h.maxBytes))
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		response.WriteError(w, r, domain.ErrInternal(err))
		return
	}
	if int64(len(content)) > h.maxBytes {
		response.WriteError(w, r, domain.ErrFileTooLarge(h.maxBytes))
		return
	}

	up := leadimport.Upload{Filename: hdr.Filename, Content: content}
	if u, ok := middleware.UserFromContext(r.Context()); ok {
		up.UserEmail = u.Email
	}

	res, err := h.importer.Import(r.Context(), up)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	middleware.ImportRowsTotal.WithLabelValues("created").Add(float64(res.Created))
	middleware.ImportRowsTotal.WithLabelValues("failed").Add(float64(len(res.Errors)))

	logger.WithCtx(r.Context()).Info().
		Str("filename", hdr.Filename).
		Str("user_email", up.UserEmail).
		Int("created", res.Created).
		Int("failed", len(res.Errors)).
		Msg("leads_imported")

	response.JSON(w, r, http.StatusOK, dto.NewImportResultView(res))
}
