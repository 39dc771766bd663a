// Package servicetest provides an in-memory service.Store for tests.
// It mimics the repository contracts closely enough to exercise the
// service layer without a database: case-insensitive email lookup,
// association attachment on reads, snapshot-based rollback for
// Transaction, and the same reference constraints the migrated schema
// enforces (a row that is still referenced cannot be deleted).
package servicetest

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"

	"adboard-service/internal/errs"
	"adboard-service/internal/model"
	"adboard-service/internal/service"
)

// Store is an in-memory service.Store. Error fields, when set, are
// returned by the corresponding Save call to simulate storage
// failures inside transactions.
type Store struct {
	users    map[uint]model.User
	listings map[uint]model.Listing
	comments map[uint]model.Comment
	images   map[uint]model.Image
	avatars  map[uint]model.Avatar
	nextID   uint

	SaveUserErr    error
	SaveListingErr error
	SaveCommentErr error
	SaveImageErr   error
	SaveAvatarErr  error
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]model.User),
		listings: make(map[uint]model.Listing),
		comments: make(map[uint]model.Comment),
		images:   make(map[uint]model.Image),
		avatars:  make(map[uint]model.Avatar),
	}
}

func (s *Store) Users() service.UserRepository       { return usersRepo{s} }
func (s *Store) Listings() service.ListingRepository { return listingsRepo{s} }
func (s *Store) Comments() service.CommentRepository { return commentsRepo{s} }
func (s *Store) Images() service.ImageRepository     { return imagesRepo{s} }
func (s *Store) Avatars() service.AvatarRepository   { return avatarsRepo{s} }

// Transaction snapshots all tables, runs fn against the same store
// and restores the snapshot when fn fails.
func (s *Store) Transaction(_ context.Context, fn func(service.Store) error) error {
	users := maps.Clone(s.users)
	listings := maps.Clone(s.listings)
	comments := maps.Clone(s.comments)
	images := maps.Clone(s.images)
	avatars := maps.Clone(s.avatars)
	nextID := s.nextID

	if err := fn(s); err != nil {
		s.users = users
		s.listings = listings
		s.comments = comments
		s.images = images
		s.avatars = avatars
		s.nextID = nextID
		return err
	}
	return nil
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// Seed helpers.

func (s *Store) AddUser(u model.User) model.User {
	if u.ID == 0 {
		u.ID = s.id()
	}
	u.Avatar = nil
	s.users[u.ID] = u
	return u
}

func (s *Store) AddListing(l model.Listing) model.Listing {
	if l.ID == 0 {
		l.ID = s.id()
	}
	l.Author = nil
	l.Image = nil
	s.listings[l.ID] = l
	return l
}

func (s *Store) AddComment(cm model.Comment) model.Comment {
	if cm.ID == 0 {
		cm.ID = s.id()
	}
	cm.Author = nil
	cm.Listing = nil
	s.comments[cm.ID] = cm
	return cm
}

func (s *Store) AddImage(img model.Image) model.Image {
	if img.ID == 0 {
		img.ID = s.id()
	}
	s.images[img.ID] = img
	return img
}

func (s *Store) AddAvatar(a model.Avatar) model.Avatar {
	if a.ID == 0 {
		a.ID = s.id()
	}
	s.avatars[a.ID] = a
	return a
}

// State inspection helpers.

func (s *Store) ListingCount() int { return len(s.listings) }
func (s *Store) CommentCount() int { return len(s.comments) }
func (s *Store) ImageCount() int   { return len(s.images) }
func (s *Store) AvatarCount() int  { return len(s.avatars) }

func (s *Store) attachUser(id uint) *model.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	if u.AvatarID != nil {
		if a, ok := s.avatars[*u.AvatarID]; ok {
			u.Avatar = &a
		}
	}
	return &u
}

type usersRepo struct{ s *Store }

func (r usersRepo) ByEmail(_ context.Context, email string) (*model.User, error) {
	for id, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return r.s.attachUser(id), nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r usersRepo) ByID(_ context.Context, id uint) (*model.User, error) {
	if u := r.s.attachUser(id); u != nil {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (r usersRepo) Save(_ context.Context, u *model.User) error {
	if r.s.SaveUserErr != nil {
		return r.s.SaveUserErr
	}
	if u.ID == 0 {
		u.ID = r.s.id()
	}
	stored := *u
	stored.Avatar = nil
	r.s.users[stored.ID] = stored
	return nil
}

type listingsRepo struct{ s *Store }

func (r listingsRepo) attach(l model.Listing) model.Listing {
	l.Author = r.s.attachUser(l.AuthorID)
	if l.ImageID != nil {
		if img, ok := r.s.images[*l.ImageID]; ok {
			l.Image = &img
		}
	}
	return l
}

func (r listingsRepo) All(_ context.Context) ([]model.Listing, error) {
	out := make([]model.Listing, 0, len(r.s.listings))
	for _, l := range r.s.listings {
		out = append(out, r.attach(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r listingsRepo) ByID(_ context.Context, id uint) (*model.Listing, error) {
	l, ok := r.s.listings[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	attached := r.attach(l)
	return &attached, nil
}

func (r listingsRepo) ByAuthorID(_ context.Context, authorID uint) ([]model.Listing, error) {
	var out []model.Listing
	for _, l := range r.s.listings {
		if l.AuthorID == authorID {
			out = append(out, r.attach(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r listingsRepo) Save(_ context.Context, l *model.Listing) error {
	if r.s.SaveListingErr != nil {
		return r.s.SaveListingErr
	}
	if l.ID == 0 {
		l.ID = r.s.id()
	}
	stored := *l
	stored.Author = nil
	stored.Image = nil
	r.s.listings[stored.ID] = stored
	return nil
}

func (r listingsRepo) Delete(_ context.Context, id uint) error {
	for _, cm := range r.s.comments {
		if cm.ListingID == id {
			return fmt.Errorf("listing %d is still referenced by comment %d", id, cm.ID)
		}
	}
	delete(r.s.listings, id)
	return nil
}

type commentsRepo struct{ s *Store }

func (r commentsRepo) attach(cm model.Comment) model.Comment {
	cm.Author = r.s.attachUser(cm.AuthorID)
	return cm
}

func (r commentsRepo) ByID(_ context.Context, id uint) (*model.Comment, error) {
	cm, ok := r.s.comments[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	attached := r.attach(cm)
	return &attached, nil
}

func (r commentsRepo) ByListingID(_ context.Context, listingID uint) ([]model.Comment, error) {
	var out []model.Comment
	for _, cm := range r.s.comments {
		if cm.ListingID == listingID {
			out = append(out, r.attach(cm))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r commentsRepo) Save(_ context.Context, cm *model.Comment) error {
	if r.s.SaveCommentErr != nil {
		return r.s.SaveCommentErr
	}
	if cm.ID == 0 {
		cm.ID = r.s.id()
	}
	stored := *cm
	stored.Author = nil
	stored.Listing = nil
	r.s.comments[stored.ID] = stored
	return nil
}

func (r commentsRepo) Delete(_ context.Context, id uint) error {
	delete(r.s.comments, id)
	return nil
}

func (r commentsRepo) DeleteByListingID(_ context.Context, listingID uint) error {
	for id, cm := range r.s.comments {
		if cm.ListingID == listingID {
			delete(r.s.comments, id)
		}
	}
	return nil
}

type imagesRepo struct{ s *Store }

func (r imagesRepo) ByID(_ context.Context, id uint) (*model.Image, error) {
	img, ok := r.s.images[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &img, nil
}

func (r imagesRepo) Save(_ context.Context, img *model.Image) error {
	if r.s.SaveImageErr != nil {
		return r.s.SaveImageErr
	}
	if img.ID == 0 {
		img.ID = r.s.id()
	}
	r.s.images[img.ID] = *img
	return nil
}

func (r imagesRepo) Delete(_ context.Context, id uint) error {
	for _, l := range r.s.listings {
		if l.ImageID != nil && *l.ImageID == id {
			return fmt.Errorf("image %d is still referenced by listing %d", id, l.ID)
		}
	}
	delete(r.s.images, id)
	return nil
}

type avatarsRepo struct{ s *Store }

func (r avatarsRepo) ByID(_ context.Context, id uint) (*model.Avatar, error) {
	a, ok := r.s.avatars[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &a, nil
}

func (r avatarsRepo) Save(_ context.Context, a *model.Avatar) error {
	if r.s.SaveAvatarErr != nil {
		return r.s.SaveAvatarErr
	}
	if a.ID == 0 {
		a.ID = r.s.id()
	}
	r.s.avatars[a.ID] = *a
	return nil
}

func (r avatarsRepo) Delete(_ context.Context, id uint) error {
	for _, u := range r.s.users {
		if u.AvatarID != nil && *u.AvatarID == id {
			return fmt.Errorf("avatar %d is still referenced by user %d", id, u.ID)
		}
	}
	delete(r.s.avatars, id)
	return nil
}
