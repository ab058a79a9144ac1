package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/infra/storage"
	"github.com/BruksfildServices01/service-booking/internal/media"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

var (
	ErrImageTooLarge = httperr.ErrValidation("image_too_large", "Image must be at most 5 MB")
	ErrInvalidImage  = httperr.ErrValidation("invalid_image", "Image must be PNG, JPEG, GIF, BMP or WebP")
	ErrImageTooBig   = httperr.ErrValidation("image_dimensions_too_large", "Image must be at most 40 megapixels")
)

type UploadServiceImage struct {
	repo  domain.Repository
	store storage.ObjectStore
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUploadServiceImage(
	repo domain.Repository,
	store storage.ObjectStore,
	c cache.Cache,
	audit *audit.Dispatcher,
) *UploadServiceImage {
	if c == nil {
		c = cache.NewNoop()
	}
	return &UploadServiceImage{repo: repo, store: store, cache: c, audit: audit}
}

// Execute re-encodes the upload as WebP, stores it and points the service at it.
func (uc *UploadServiceImage) Execute(
	ctx context.Context,
	caller authz.Principal,
	id uint,
	data []byte,
) (*models.Service, error) {

	if err := authz.Require(caller, authz.ManageCatalog); err != nil {
		return nil, err
	}

	if len(data) > media.MaxUploadBytes {
		return nil, ErrImageTooLarge
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded, err := media.ToWebP(data)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrUnsupportedImage):
			return nil, ErrInvalidImage
		case errors.Is(err, media.ErrTooManyPixels):
			return nil, ErrImageTooBig
		}
		return nil, err
	}

	key := fmt.Sprintf("services/%d/%s.webp", s.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, media.ContentType, encoded)
	if err != nil {
		return nil, err
	}

	s.ImageURL = url
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	_ = uc.cache.Delete(ctx, ListCacheKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "service_image_uploaded",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"key": key, "bytes": len(encoded)},
	})

	return s, nil
}
