package repository

import (
	"context"
	"time"

	"adboard-service/internal/model"
	"adboard-service/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo struct{ db *gorm.DB }

// ByEmail finds a user by email, case-insensitively. The avatar is
// preloaded for profile mapping.
func (r *UserRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var u model.User
	err := r.db.WithContext(ctx).
		Preload("Avatar").
		Where("LOWER(email) = LOWER(?)", email).
		First(&u).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) ByID(ctx context.Context, id uint) (*model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var u model.User
	if err := r.db.WithContext(ctx).Preload("Avatar").First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UserRepo) Save(ctx context.Context, u *model.User) error {
	defer prometheus.TrackDBOperation("upsert")(time.Now())
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}
