// Package mapper converts between GORM models and wire DTOs.
// Everything here is a pure function: no repository access, no
// side effects. Derived fields (image and avatar URLs) are computed
// from the attached association ids.
package mapper

import (
	"fmt"

	"adboard-service/internal/dto"
	"adboard-service/internal/model"
)

const listingImagePrefix = "/ads/image"

// ListingToDTO maps a listing to its summary wire shape.
func ListingToDTO(l *model.Listing) dto.Listing {
	return dto.Listing{
		Pk:     l.ID,
		Author: l.AuthorID,
		Image:  ImageURL(l.Image),
		Price:  l.Price,
		Title:  l.Title,
	}
}

// ListingToExtendedDTO maps a listing to the detail shape, including
// the author's contact fields. The author must be preloaded.
func ListingToExtendedDTO(l *model.Listing) dto.ExtendedListing {
	ext := dto.ExtendedListing{
		Listing:     ListingToDTO(l),
		Description: l.Description,
	}
	if l.Author != nil {
		ext.AuthorFirstName = l.Author.FirstName
		ext.AuthorLastName = l.Author.LastName
		ext.Email = l.Author.Email
		ext.Phone = l.Author.Phone
	}
	return ext
}

// ListingsToDTO wraps a slice of listings with its count.
func ListingsToDTO(listings []model.Listing) dto.Listings {
	results := make([]dto.Listing, 0, len(listings))
	for i := range listings {
		results = append(results, ListingToDTO(&listings[i]))
	}
	return dto.Listings{Count: len(results), Results: results}
}

// ListingFromInput builds a listing from the client payload. Id,
// author and image are server-controlled and deliberately not taken
// from the input.
func ListingFromInput(in dto.CreateOrUpdateListing) model.Listing {
	return model.Listing{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
	}
}

// ImageURL derives the public URL of a listing image, or nil when the
// listing has none.
func ImageURL(img *model.Image) *string {
	if img == nil {
		return nil
	}
	url := fmt.Sprintf("%s/%d", listingImagePrefix, img.ID)
	return &url
}
