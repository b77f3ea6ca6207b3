package product_controller

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

// fakeStore is an in-memory stand-in for the Mongo-backed store, close enough
// to exercise the handlers' id, merge, and authorization behavior.
type fakeStore struct {
	products map[string]map[string]models.Product // collection -> id -> doc
	users    map[string]models.User               // email -> user
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]map[string]models.Product{},
		users:    map[string]models.User{},
	}
}

func (f *fakeStore) col(collection string) map[string]models.Product {
	if f.products[collection] == nil {
		f.products[collection] = map[string]models.Product{}
	}
	return f.products[collection]
}

func (f *fakeStore) ListProducts(_ context.Context, collection string) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.col(collection) {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) GetProduct(_ context.Context, collection, id string) (*models.Product, error) {
	if !hexID.MatchString(id) {
		return nil, store.ErrInvalidID
	}
	p, ok := f.col(collection)[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) InsertProduct(_ context.Context, collection string, p models.Product) (*mongo.InsertOneResult, error) {
	p.ID = bson.NewObjectID()
	f.col(collection)[p.ID.Hex()] = p
	return &mongo.InsertOneResult{InsertedID: p.ID, Acknowledged: true}, nil
}

func (f *fakeStore) ReplaceProduct(_ context.Context, collection, id string, p models.Product) (*mongo.UpdateResult, error) {
	if !hexID.MatchString(id) {
		return nil, store.ErrInvalidID
	}
	old, ok := f.col(collection)[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	oid, _ := bson.ObjectIDFromHex(id)
	p.ID = oid
	// Mirrors the store: brand is only written when submitted.
	if p.Brand == "" {
		p.Brand = old.Brand
	}
	f.col(collection)[id] = p
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) PatchProduct(_ context.Context, collection, id string, patch models.ProductPatch) (*mongo.UpdateResult, error) {
	if !hexID.MatchString(id) {
		return nil, store.ErrInvalidID
	}
	p, ok := f.col(collection)[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if patch.Animal != nil {
		p.Animal = *patch.Animal
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Img != nil {
		p.Img = patch.Img
	}
	f.col(collection)[id] = p
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, collection, id string) (*mongo.DeleteResult, error) {
	if !hexID.MatchString(id) {
		return nil, store.ErrInvalidID
	}
	if _, ok := f.col(collection)[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(f.col(collection), id)
	return &mongo.DeleteResult{DeletedCount: 1, Acknowledged: true}, nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

const testSuperAdmin = "owner@petclub.dev"

func newTestRouter(fs *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := New(fs, store.ColPetFood, "pet food", testSuperAdmin)
	r := gin.New()
	r.GET("/petfood", ctl.GetProducts)
	r.GET("/petfood/:id", ctl.GetProductByID)
	r.POST("/petfood", ctl.CreateProduct)
	r.PUT("/petfood/:id", ctl.UpdateProduct)
	r.PATCH("/petfood/:id", ctl.PatchProduct)
	r.DELETE("/petfood/:id", ctl.DeleteProduct)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, imgFile []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imgFile != nil {
		fw, err := w.CreateFormFile("img", "product.png")
		require.NoError(t, err)
		_, err = fw.Write(imgFile)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func seedProduct(fs *fakeStore, img []byte) string {
	res, _ := fs.InsertProduct(context.Background(), store.ColPetFood, models.Product{
		Animal: "dog",
		Title:  "Salmon Bites",
		Brand:  "Pawsome",
		Price:  "12.50",
		Stock:  "40",
		Img:    img,
	})
	return res.InsertedID.(bson.ObjectID).Hex()
}

func TestCreateProductRequiresImage(t *testing.T) {
	fs := newFakeStore()
	router := newTestRouter(fs)

	body, contentType := multipartBody(t, map[string]string{"title": "Salmon Bites"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/petfood", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Image file 'img' is required"}`, rec.Body.String())
	assert.Empty(t, fs.col(store.ColPetFood))
}

func TestCreateThenGetRoundTripsImageBytes(t *testing.T) {
	fs := newFakeStore()
	router := newTestRouter(fs)
	img := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}

	body, contentType := multipartBody(t, map[string]string{
		"animal": "cat",
		"title":  "Tuna Treats",
		"price":  "8.00",
		"stock":  "12",
	}, img)
	req := httptest.NewRequest(http.MethodPost, "/petfood", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var id string
	for k := range fs.col(store.ColPetFood) {
		id = k
	}
	require.NotEmpty(t, id)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/petfood/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Tuna Treats", got.Title)
	// []byte marshals as base64 over JSON, so equality here proves the bytes
	// survived the full round trip.
	assert.Equal(t, img, got.Img)
}

func TestGetMissingProductAnswersNull(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/petfood/64f000000000000000000000", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestGetProductRejectsMalformedID(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/petfood/not-an-id", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid product ID"}`, rec.Body.String())
}

func TestDeleteDeniedForTempAdmin(t *testing.T) {
	fs := newFakeStore()
	fs.users["helper@petclub.dev"] = models.User{Email: "helper@petclub.dev", Role: models.RoleTempAdmin}
	img := []byte{1, 2, 3}
	id := seedProduct(fs, img)
	router := newTestRouter(fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/petfood/"+id+"?email=helper@petclub.dev", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"You do not have access to delete this product"}`, rec.Body.String())
	assert.Len(t, fs.col(store.ColPetFood), 1, "denied delete must not mutate")
}

func TestDeleteAllowedForSuperAdmin(t *testing.T) {
	fs := newFakeStore()
	fs.users[testSuperAdmin] = models.User{Email: testSuperAdmin, Role: models.RoleAdmin}
	id := seedProduct(fs, []byte{1})
	router := newTestRouter(fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/petfood/"+id+"?email="+testSuperAdmin, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, fs.col(store.ColPetFood))
}

func TestUpdateDeniedForAdminWithoutPinnedEmail(t *testing.T) {
	fs := newFakeStore()
	fs.users["other@petclub.dev"] = models.User{Email: "other@petclub.dev", Role: models.RoleAdmin}
	id := seedProduct(fs, []byte{1})
	router := newTestRouter(fs)

	body, contentType := multipartBody(t, map[string]string{"title": "Renamed"}, nil)
	req := httptest.NewRequest(http.MethodPut, "/petfood/"+id+"?email=other@petclub.dev", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"You do not have access to update this product"}`, rec.Body.String())
	assert.Equal(t, "Salmon Bites", fs.col(store.ColPetFood)[id].Title)
}

func TestPutReplacesWholeRecordIncludingImage(t *testing.T) {
	fs := newFakeStore()
	fs.users[testSuperAdmin] = models.User{Email: testSuperAdmin, Role: models.RoleAdmin}
	oldImg := []byte{1, 2, 3, 4}
	id := seedProduct(fs, oldImg)
	router := newTestRouter(fs)

	echoed := base64.StdEncoding.EncodeToString([]byte{9, 9, 9})
	body, contentType := multipartBody(t, map[string]string{
		"animal": "dog",
		"title":  "Salmon Bites XL",
		"price":  "15.00",
		"stock":  "10",
		"img":    echoed,
	}, nil)
	req := httptest.NewRequest(http.MethodPut, "/petfood/"+id+"?email="+testSuperAdmin, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	stored := fs.col(store.ColPetFood)[id]
	assert.Equal(t, "Salmon Bites XL", stored.Title)
	assert.Equal(t, []byte{9, 9, 9}, stored.Img, "PUT writes the echoed image, not the stored one")
	// Brand is the one field PUT leaves alone when not submitted.
	assert.Equal(t, "Pawsome", stored.Brand)
}

func TestPatchWithoutImageKeepsStoredBytes(t *testing.T) {
	fs := newFakeStore()
	fs.users[testSuperAdmin] = models.User{Email: testSuperAdmin, Role: models.RoleAdmin}
	img := []byte{7, 7, 7, 7}
	id := seedProduct(fs, img)
	router := newTestRouter(fs)

	payload := bytes.NewBufferString(`{"price":"9.99"}`)
	req := httptest.NewRequest(http.MethodPatch, "/petfood/"+id+"?email="+testSuperAdmin, payload)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	stored := fs.col(store.ColPetFood)[id]
	assert.Equal(t, "9.99", stored.Price)
	assert.Equal(t, img, stored.Img, "PATCH without img must leave the stored image untouched")
	assert.Equal(t, "Pawsome", stored.Brand)
}

func TestPatchWithUploadReplacesImage(t *testing.T) {
	fs := newFakeStore()
	fs.users[testSuperAdmin] = models.User{Email: testSuperAdmin, Role: models.RoleAdmin}
	id := seedProduct(fs, []byte{7, 7})
	router := newTestRouter(fs)

	newImg := []byte{42, 42, 42}
	body, contentType := multipartBody(t, map[string]string{"stock": "0"}, newImg)
	req := httptest.NewRequest(http.MethodPatch, "/petfood/"+id+"?email="+testSuperAdmin, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	stored := fs.col(store.ColPetFood)[id]
	assert.Equal(t, "0", stored.Stock)
	assert.Equal(t, newImg, stored.Img)
}

func TestCreateTagsTempAdminDetails(t *testing.T) {
	fs := newFakeStore()
	router := newTestRouter(fs)

	body, contentType := multipartBody(t, map[string]string{
		"title":   "Chew Rope",
		"addedBy": "temp_admin",
		"email":   "helper@petclub.dev",
		"name":    "Helper",
	}, []byte{1})
	req := httptest.NewRequest(http.MethodPost, "/petfood", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stored models.Product
	for _, p := range fs.col(store.ColPetFood) {
		stored = p
	}
	require.NotNil(t, stored.AddedByDetails)
	assert.Equal(t, "helper@petclub.dev", stored.AddedByDetails.Email)
	assert.Equal(t, "Helper", stored.AddedByDetails.Name)
}
