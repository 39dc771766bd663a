// Package service holds the business operations of the adboard:
// authentication, listings, comments and user profile management.
// Services receive the caller identity explicitly on every call and
// own the owner-or-admin checks on mutation paths.
package service

import (
	"context"

	"adboard-service/internal/model"
)

// UserRepository is the persistence contract for users.
type UserRepository interface {
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id uint) (*model.User, error)
	Save(ctx context.Context, u *model.User) error
}

// ListingRepository is the persistence contract for listings.
// ByID preloads the author and image associations.
type ListingRepository interface {
	All(ctx context.Context) ([]model.Listing, error)
	ByID(ctx context.Context, id uint) (*model.Listing, error)
	ByAuthorID(ctx context.Context, authorID uint) ([]model.Listing, error)
	Save(ctx context.Context, l *model.Listing) error
	Delete(ctx context.Context, id uint) error
}

// CommentRepository is the persistence contract for comments.
// ByID and ByListingID preload the author with their avatar.
type CommentRepository interface {
	ByID(ctx context.Context, id uint) (*model.Comment, error)
	ByListingID(ctx context.Context, listingID uint) ([]model.Comment, error)
	Save(ctx context.Context, cm *model.Comment) error
	Delete(ctx context.Context, id uint) error
	DeleteByListingID(ctx context.Context, listingID uint) error
}

// ImageRepository is the persistence contract for listing images.
type ImageRepository interface {
	ByID(ctx context.Context, id uint) (*model.Image, error)
	Save(ctx context.Context, img *model.Image) error
	Delete(ctx context.Context, id uint) error
}

// AvatarRepository is the persistence contract for user avatars.
type AvatarRepository interface {
	ByID(ctx context.Context, id uint) (*model.Avatar, error)
	Save(ctx context.Context, a *model.Avatar) error
	Delete(ctx context.Context, id uint) error
}

// Store bundles the repositories and provides a transactional scope.
// Transaction runs fn against a store bound to a single database
// transaction; any error rolls the whole scope back.
type Store interface {
	Users() UserRepository
	Listings() ListingRepository
	Comments() CommentRepository
	Images() ImageRepository
	Avatars() AvatarRepository
	Transaction(ctx context.Context, fn func(Store) error) error
}
