package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	pkgerrors "github.com/jacmel/storefront-backend/pkg/errors"
	"github.com/jacmel/storefront-backend/pkg/logger"
)

// DefaultMaxUploadBytes matches the 2 MiB cap on uploaded images.
const DefaultMaxUploadBytes int64 = 2 * 1024 * 1024

// Service turns uploaded images into embeddable data URLs for logos and menu
// pictures.
type Service interface {
	ToDataURL(ctx context.Context, r io.Reader) (string, error)
	MaxUploadBytes() int64
}

type service struct {
	maxBytes int64
	logg     *logger.Logger
}

func NewService(maxBytes int64, logg *logger.Logger) Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{maxBytes: maxBytes, logg: logg}
}

func (s *service) MaxUploadBytes() int64 { return s.maxBytes }

func (s *service) ToDataURL(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "read upload")
	}
	if int64(len(data)) > s.maxBytes {
		return "", pkgerrors.New(pkgerrors.CodePayloadTooBig, "image exceeds upload limit").
			WithDetails(map[string]any{"max_bytes": s.maxBytes})
	}
	if len(data) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "file is empty")
	}

	mediaType, err := sniffImageType(data)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file must be an image").
			WithDetails(map[string]any{"allowed": allowedImageDescription})
	}

	s.logg.Debug(s.logg.WithFields(ctx, map[string]any{
		"mime_type":  mediaType,
		"size_bytes": len(data),
	}), "media.data_url_built")
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data)), nil
}
