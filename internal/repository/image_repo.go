package repository

import (
	"context"
	"time"

	"adboard-service/internal/model"
	"adboard-service/prometheus"

	"gorm.io/gorm"
)

type ImageRepo struct{ db *gorm.DB }

func (r *ImageRepo) ByID(ctx context.Context, id uint) (*model.Image, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var img model.Image
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &img, nil
}

func (r *ImageRepo) Save(ctx context.Context, img *model.Image) error {
	defer prometheus.TrackDBOperation("upsert")(time.Now())
	return r.db.WithContext(ctx).Save(img).Error
}

func (r *ImageRepo) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).Delete(&model.Image{}, id).Error
}
