package service

import (
	"context"

	"adboard-service/internal/model"
)

// ImageService stores and serves listing image blobs.
type ImageService struct {
	store Store
}

func NewImageService(store Store) *ImageService {
	return &ImageService{store: store}
}

// Upload persists a new image row from an in-memory upload.
func (s *ImageService) Upload(ctx context.Context, up Upload) (*model.Image, error) {
	img := &model.Image{
		FileSize:  up.Size,
		MediaType: up.ContentType,
		Data:      up.Data,
	}
	if err := s.store.Images().Save(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// Get returns the image row or errs.ErrNotFound.
func (s *ImageService) Get(ctx context.Context, id uint) (*model.Image, error) {
	return s.store.Images().ByID(ctx, id)
}

// AvatarService stores and serves user avatar blobs.
type AvatarService struct {
	store Store
}

func NewAvatarService(store Store) *AvatarService {
	return &AvatarService{store: store}
}

// Upload persists a new avatar row from an in-memory upload.
func (s *AvatarService) Upload(ctx context.Context, up Upload) (*model.Avatar, error) {
	avatar := &model.Avatar{
		FileSize:  up.Size,
		MediaType: up.ContentType,
		Data:      up.Data,
	}
	if err := s.store.Avatars().Save(ctx, avatar); err != nil {
		return nil, err
	}
	return avatar, nil
}

// Get returns the avatar row or errs.ErrNotFound.
func (s *AvatarService) Get(ctx context.Context, id uint) (*model.Avatar, error) {
	return s.store.Avatars().ByID(ctx, id)
}
