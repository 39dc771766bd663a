package repository

import (
	"context"
	"time"

	"adboard-service/internal/model"
	"adboard-service/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListingRepo struct{ db *gorm.DB }

func (r *ListingRepo) All(ctx context.Context) ([]model.Listing, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var listings []model.Listing
	err := r.db.WithContext(ctx).Preload("Image").Order("id").Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ByID loads a listing with its author and image for permission checks
// and DTO mapping.
func (r *ListingRepo) ByID(ctx context.Context, id uint) (*model.Listing, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var l model.Listing
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Image").
		First(&l, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *ListingRepo) ByAuthorID(ctx context.Context, authorID uint) ([]model.Listing, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var listings []model.Listing
	err := r.db.WithContext(ctx).
		Preload("Image").
		Where("author_id = ?", authorID).
		Order("id").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepo) Save(ctx context.Context, l *model.Listing) error {
	defer prometheus.TrackDBOperation("upsert")(time.Now())
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *ListingRepo) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).Delete(&model.Listing{}, id).Error
}
