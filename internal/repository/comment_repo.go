package repository

import (
	"context"
	"time"

	"adboard-service/internal/model"
	"adboard-service/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepo struct{ db *gorm.DB }

// ByID loads a comment with its author (and the author's avatar, for
// the authorImage DTO field).
func (r *CommentRepo) ByID(ctx context.Context, id uint) (*model.Comment, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var cm model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Author.Avatar").
		First(&cm, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &cm, nil
}

func (r *CommentRepo) ByListingID(ctx context.Context, listingID uint) ([]model.Comment, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Author.Avatar").
		Where("listing_id = ?", listingID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepo) Save(ctx context.Context, cm *model.Comment) error {
	defer prometheus.TrackDBOperation("upsert")(time.Now())
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(cm).Error
}

func (r *CommentRepo) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (r *CommentRepo) DeleteByListingID(ctx context.Context, listingID uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())
	return r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&model.Comment{}).Error
}
