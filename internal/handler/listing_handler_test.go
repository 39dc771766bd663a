package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"adboard-service/internal/handler"
	"adboard-service/internal/model"
	"adboard-service/internal/service"
	"adboard-service/internal/service/servicetest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintParam(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func newListingHandler(store *servicetest.Store) *handler.ListingHandler {
	return handler.NewListingHandler(service.NewListingService(store), service.NewImageService(store))
}

// multipartListing builds the create/update-image request body: a
// "properties" JSON part plus an "image" file part.
func multipartListing(t *testing.T, properties string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if properties != "" {
		require.NoError(t, w.WriteField("properties", properties))
	}
	part, err := w.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestListingHandler_GetAll(t *testing.T) {
	store := servicetest.NewStore()
	owner := store.AddUser(model.User{Email: "owner@example.com"})
	store.AddListing(model.Listing{Title: "Bike", AuthorID: owner.ID})
	store.AddListing(model.Listing{Title: "Lamp", AuthorID: owner.ID})
	h := newListingHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/ads", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetAll(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])
}

func TestListingHandler_Add(t *testing.T) {
	store := servicetest.NewStore()
	owner := store.AddUser(model.User{Email: "owner@example.com", Role: model.RoleUser})
	h := newListingHandler(store)

	t.Run("creates the listing with its image", func(t *testing.T) {
		body, contentType := multipartListing(t, `{"title":"Bike","price":100,"description":"Barely used"}`, []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/ads", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		authenticate(c, owner)

		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, store.ListingCount())
		assert.Equal(t, 1, store.ImageCount())

		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "Bike", out["title"])
		assert.NotNil(t, out["image"])
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		body, contentType := multipartListing(t, `{"title":"Bike","price":-1}`, []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/ads", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		authenticate(c, owner)

		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a missing properties part", func(t *testing.T) {
		body, contentType := multipartListing(t, "", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/ads", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		authenticate(c, owner)

		before := store.ListingCount()
		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, before, store.ListingCount())
	})

	t.Run("rejects a missing image part", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("properties", `{"title":"Bike","price":1}`))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/ads", &buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		authenticate(c, owner)

		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListingHandler_Get(t *testing.T) {
	store := servicetest.NewStore()
	owner := store.AddUser(model.User{Email: "owner@example.com", FirstName: "Anna"})
	listing := store.AddListing(model.Listing{Title: "Bike", AuthorID: owner.ID})
	h := newListingHandler(store)

	t.Run("returns the extended detail", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(uintParam(listing.ID))

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "Anna", out["authorFirstName"])
	})

	t.Run("unknown listing returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("999")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("garbage id returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListingHandler_Delete(t *testing.T) {
	store := servicetest.NewStore()
	owner := store.AddUser(model.User{Email: "owner@example.com", Role: model.RoleUser})
	stranger := store.AddUser(model.User{Email: "other@example.com", Role: model.RoleUser})
	listing := store.AddListing(model.Listing{Title: "Bike", AuthorID: owner.ID})
	h := newListingHandler(store)

	deleteAs := func(t *testing.T, u model.User) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(uintParam(listing.ID))
		authenticate(c, u)
		require.NoError(t, h.Delete(c))
		return rec
	}

	t.Run("a stranger gets 403 and nothing is removed", func(t *testing.T) {
		rec := deleteAs(t, stranger)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 1, store.ListingCount())
	})

	t.Run("the owner gets 204", func(t *testing.T) {
		rec := deleteAs(t, owner)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 0, store.ListingCount())
	})
}

func TestListingHandler_Update(t *testing.T) {
	store := servicetest.NewStore()
	owner := store.AddUser(model.User{Email: "owner@example.com", Role: model.RoleUser})
	listing := store.AddListing(model.Listing{Title: "Bike", Price: 100, AuthorID: owner.ID})
	h := newListingHandler(store)

	c, rec := newJSONContext(t, http.MethodPatch, "/", `{"title":"Bike (reduced)","price":80}`)
	c.SetParamNames("id")
	c.SetParamValues(uintParam(listing.ID))
	authenticate(c, owner)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Bike (reduced)", out["title"])
	assert.Equal(t, float64(80), out["price"])
}

func TestListingHandler_GetImage(t *testing.T) {
	store := servicetest.NewStore()
	img := store.AddImage(model.Image{Data: []byte("raw-bytes"), MediaType: "image/png"})
	h := newListingHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uintParam(img.ID))

	require.NoError(t, h.GetImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "raw-bytes", rec.Body.String())
}
