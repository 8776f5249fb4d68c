package controllers

import (
	"errors"
	"net/http"

	"github.com/jacmel/storefront-backend/api/responses"
	"github.com/jacmel/storefront-backend/internal/media"
	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

const (
	mediaFormField = "file"
	// multipart framing on top of the file itself
	multipartOverhead = 64 << 10
)

// AdminMediaUpload reads a single image from the "file" form field and returns
// it as a data URL ready to store on a menu entry or the settings logo.
func AdminMediaUpload(svc media.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		limit := svc.MaxUploadBytes() + multipartOverhead
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		if err := r.ParseMultipartForm(limit); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodePayloadTooBig, err, "image exceeds upload limit").
					WithDetails(map[string]any{"max_bytes": svc.MaxUploadBytes()}))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, _, err := r.FormFile(mediaFormField)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer file.Close()

		dataURL, err := svc.ToDataURL(r.Context(), file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"data_url": dataURL})
	}
}
