package service

import (
	"context"
	"time"

	"adboard-service/internal/dto"
	"adboard-service/internal/errs"
	"adboard-service/internal/mapper"
	"adboard-service/internal/model"
)

// CommentService owns comment CRUD under a listing.
type CommentService struct {
	store Store
}

func NewCommentService(store Store) *CommentService {
	return &CommentService{store: store}
}

// List returns a listing's comments with their count. An unknown
// listing id is a not-found, not an empty collection.
func (s *CommentService) List(ctx context.Context, listingID uint) (dto.Comments, error) {
	if _, err := s.store.Listings().ByID(ctx, listingID); err != nil {
		return dto.Comments{}, err
	}
	comments, err := s.store.Comments().ByListingID(ctx, listingID)
	if err != nil {
		return dto.Comments{}, err
	}
	return mapper.CommentsToDTO(comments), nil
}

// Add creates a comment on a listing. The creation timestamp is
// server-assigned and the author is the resolved caller.
func (s *CommentService) Add(ctx context.Context, listingID uint, in dto.CreateOrUpdateComment, caller Principal) (dto.Comment, error) {
	listing, err := s.store.Listings().ByID(ctx, listingID)
	if err != nil {
		return dto.Comment{}, err
	}
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return dto.Comment{}, err
	}

	comment := model.Comment{
		Text:      in.Text,
		CreatedAt: time.Now(),
		AuthorID:  user.ID,
		ListingID: listing.ID,
	}
	if err := s.store.Comments().Save(ctx, &comment); err != nil {
		return dto.Comment{}, err
	}

	comment.Author = user
	return mapper.CommentToDTO(&comment), nil
}

// Delete removes a comment after the owner-or-admin check.
func (s *CommentService) Delete(ctx context.Context, listingID, commentID uint, caller Principal) error {
	comment, err := s.loadListingComment(ctx, listingID, commentID)
	if err != nil {
		return err
	}
	if err := checkPermit(comment.Author, caller); err != nil {
		return err
	}
	return s.store.Comments().Delete(ctx, commentID)
}

// Update overwrites the comment text after the owner-or-admin check.
func (s *CommentService) Update(ctx context.Context, listingID, commentID uint, in dto.CreateOrUpdateComment, caller Principal) (dto.Comment, error) {
	comment, err := s.loadListingComment(ctx, listingID, commentID)
	if err != nil {
		return dto.Comment{}, err
	}
	if err := checkPermit(comment.Author, caller); err != nil {
		return dto.Comment{}, err
	}

	comment.Text = in.Text
	if err := s.store.Comments().Save(ctx, comment); err != nil {
		return dto.Comment{}, err
	}
	return mapper.CommentToDTO(comment), nil
}

// loadListingComment fetches a comment and verifies it belongs to the
// listing named in the request path.
func (s *CommentService) loadListingComment(ctx context.Context, listingID, commentID uint) (*model.Comment, error) {
	comment, err := s.store.Comments().ByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.ListingID != listingID {
		return nil, errs.ErrNotFound
	}
	return comment, nil
}
