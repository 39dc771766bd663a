package repository

import (
	"context"
	"time"

	"adboard-service/internal/model"
	"adboard-service/prometheus"

	"gorm.io/gorm"
)

type AvatarRepo struct{ db *gorm.DB }

func (r *AvatarRepo) ByID(ctx context.Context, id uint) (*model.Avatar, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var a model.Avatar
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AvatarRepo) Save(ctx context.Context, a *model.Avatar) error {
	defer prometheus.TrackDBOperation("upsert")(time.Now())
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AvatarRepo) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).Delete(&model.Avatar{}, id).Error
}
