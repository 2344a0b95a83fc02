package response

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/baechuer/leads-api/internal/domain"
)

// DecodeJSON decodes a JSON request body into dst. An empty body is an error.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return domain.ErrInvalidJSON(errors.New("empty body"))
	}
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ErrInvalidJSON(errors.New("empty body"))
		}
		return domain.ErrInvalidJSON(err)
	}
	return nil
}
