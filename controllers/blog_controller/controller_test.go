package blog_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	blog_cache "github.com/al-mohaimin-farabi/pet-club-backend/cache"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	blogs []models.Blog
	calls int
	err   error
}

func (f *fakeBlogStore) ListBlogs(_ context.Context) ([]models.Blog, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.blogs, nil
}

func newBlogRouter(fs *fakeBlogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	blog_cache.Invalidate()
	ctl := New(fs)
	r := gin.New()
	r.GET("/blogs", ctl.GetBlogs)
	r.GET("/blogs/:blogTitle", ctl.GetBlogByTitle)
	return r
}

func TestGetBlogsServesFromCacheOnRepeat(t *testing.T) {
	fs := &fakeBlogStore{blogs: []models.Blog{{BlogTitle: "Grooming 101", Author: "A"}}}
	router := newBlogRouter(fs)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, fs.calls, "repeat reads inside the TTL must hit the cache")
}

func TestGetBlogByTitleExactMatch(t *testing.T) {
	fs := &fakeBlogStore{blogs: []models.Blog{
		{BlogTitle: "Grooming 101", Author: "A"},
		{BlogTitle: "Feeding Schedules", Author: "B"},
	}}
	router := newBlogRouter(fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/Feeding%20Schedules", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "B", got.Author)
}

func TestGetBlogByTitleNoMatchAnswersNull(t *testing.T) {
	fs := &fakeBlogStore{blogs: []models.Blog{{BlogTitle: "Grooming 101"}}}
	router := newBlogRouter(fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/grooming%20101", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String(), "title matching is exact, not case folded")
}

func TestGetBlogsStoreFailure(t *testing.T) {
	fs := &fakeBlogStore{err: errors.New("boom")}
	router := newBlogRouter(fs)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Database error"}`, rec.Body.String())
}
