// Package repository implements the persistence contracts from the
// service package on top of GORM/PostgreSQL. gorm.ErrRecordNotFound
// is translated into errs.ErrNotFound at this boundary so the layers
// above only ever see the domain error taxonomy.
package repository

import (
	"context"
	"errors"

	"adboard-service/internal/errs"
	"adboard-service/internal/service"

	"gorm.io/gorm"
)

// Store bundles the GORM repositories over a shared connection (or a
// transaction handle).
type Store struct {
	db       *gorm.DB
	users    *UserRepo
	listings *ListingRepo
	comments *CommentRepo
	images   *ImageRepo
	avatars  *AvatarRepo
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		users:    &UserRepo{db: db},
		listings: &ListingRepo{db: db},
		comments: &CommentRepo{db: db},
		images:   &ImageRepo{db: db},
		avatars:  &AvatarRepo{db: db},
	}
}

func (s *Store) Users() service.UserRepository       { return s.users }
func (s *Store) Listings() service.ListingRepository { return s.listings }
func (s *Store) Comments() service.CommentRepository { return s.comments }
func (s *Store) Images() service.ImageRepository     { return s.images }
func (s *Store) Avatars() service.AvatarRepository   { return s.avatars }

// Transaction runs fn against a store bound to a single database
// transaction. Any error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(service.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// notFound converts GORM's record-not-found into the domain error.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return err
}
