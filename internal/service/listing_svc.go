package service

import (
	"context"

	"adboard-service/internal/dto"
	"adboard-service/internal/mapper"
	"adboard-service/internal/model"
)

// ListingService owns listing CRUD and the owner-or-admin checks on
// every mutation path.
type ListingService struct {
	store Store
}

func NewListingService(store Store) *ListingService {
	return &ListingService{store: store}
}

// GetAll returns every listing as summary DTOs.
func (s *ListingService) GetAll(ctx context.Context) (dto.Listings, error) {
	listings, err := s.store.Listings().All(ctx)
	if err != nil {
		return dto.Listings{}, err
	}
	return mapper.ListingsToDTO(listings), nil
}

// Add creates a listing for the caller and attaches the uploaded
// image. The listing row and the image row are written in one
// transaction: the image needs the listing's assigned id conceptually,
// and a failed upload must not leave an imageless listing behind.
// Client-supplied id/author/image are ignored by the inbound mapping.
func (s *ListingService) Add(ctx context.Context, in dto.CreateOrUpdateListing, image Upload, caller Principal) (dto.Listing, error) {
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return dto.Listing{}, err
	}

	listing := mapper.ListingFromInput(in)
	listing.AuthorID = user.ID

	err = s.store.Transaction(ctx, func(tx Store) error {
		if err := tx.Listings().Save(ctx, &listing); err != nil {
			return err
		}
		img := &model.Image{
			FileSize:  image.Size,
			MediaType: image.ContentType,
			Data:      image.Data,
		}
		if err := tx.Images().Save(ctx, img); err != nil {
			return err
		}
		listing.ImageID = &img.ID
		listing.Image = img
		return tx.Listings().Save(ctx, &listing)
	})
	if err != nil {
		return dto.Listing{}, err
	}

	listing.Author = user
	return mapper.ListingToDTO(&listing), nil
}

// Get returns the extended DTO with author contact fields.
func (s *ListingService) Get(ctx context.Context, id uint) (dto.ExtendedListing, error) {
	listing, err := s.store.Listings().ByID(ctx, id)
	if err != nil {
		return dto.ExtendedListing{}, err
	}
	return mapper.ListingToExtendedDTO(listing), nil
}

// Delete removes a listing with its comments and image in one
// transaction, ordered by who references whom: comments reference the
// listing and the listing references the image, so comments go first
// and the image row last.
func (s *ListingService) Delete(ctx context.Context, id uint, caller Principal) error {
	listing, err := s.store.Listings().ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkPermit(listing.Author, caller); err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx Store) error {
		if err := tx.Comments().DeleteByListingID(ctx, id); err != nil {
			return err
		}
		if err := tx.Listings().Delete(ctx, id); err != nil {
			return err
		}
		if listing.ImageID != nil {
			return tx.Images().Delete(ctx, *listing.ImageID)
		}
		return nil
	})
}

// Update overwrites title, description and price.
func (s *ListingService) Update(ctx context.Context, id uint, in dto.CreateOrUpdateListing, caller Principal) (dto.Listing, error) {
	listing, err := s.store.Listings().ByID(ctx, id)
	if err != nil {
		return dto.Listing{}, err
	}
	if err := checkPermit(listing.Author, caller); err != nil {
		return dto.Listing{}, err
	}

	listing.Title = in.Title
	listing.Description = in.Description
	listing.Price = in.Price
	if err := s.store.Listings().Save(ctx, listing); err != nil {
		return dto.Listing{}, err
	}
	return mapper.ListingToDTO(listing), nil
}

// Mine returns the caller's own listings.
func (s *ListingService) Mine(ctx context.Context, caller Principal) (dto.Listings, error) {
	user, err := resolveCaller(ctx, s.store.Users(), caller)
	if err != nil {
		return dto.Listings{}, err
	}
	listings, err := s.store.Listings().ByAuthorID(ctx, user.ID)
	if err != nil {
		return dto.Listings{}, err
	}
	return mapper.ListingsToDTO(listings), nil
}

// UpdateImage replaces the listing image. The new row is attached
// before the old one is removed, inside one transaction, so a partial
// "old deleted, new not attached" state never becomes visible.
// Listings that never had an image are fine.
func (s *ListingService) UpdateImage(ctx context.Context, id uint, image Upload, caller Principal) error {
	listing, err := s.store.Listings().ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkPermit(listing.Author, caller); err != nil {
		return err
	}

	oldImageID := listing.ImageID
	return s.store.Transaction(ctx, func(tx Store) error {
		img := &model.Image{
			FileSize:  image.Size,
			MediaType: image.ContentType,
			Data:      image.Data,
		}
		if err := tx.Images().Save(ctx, img); err != nil {
			return err
		}
		listing.ImageID = &img.ID
		listing.Image = img
		if err := tx.Listings().Save(ctx, listing); err != nil {
			return err
		}
		if oldImageID != nil {
			return tx.Images().Delete(ctx, *oldImageID)
		}
		return nil
	})
}
