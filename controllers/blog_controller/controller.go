package blog_controller

import (
	"context"
	"log"

	blog_cache "github.com/al-mohaimin-farabi/pet-club-backend/cache"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
)

type Store interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
}

// Controller serves the read-only blogs collection through the in-process
// TTL cache.
type Controller struct {
	store Store
}

func New(s Store) *Controller {
	return &Controller{store: s}
}

func (ctl *Controller) loadBlogs(ctx context.Context) ([]models.Blog, error) {
	if blogs, ok := blog_cache.Get(); ok {
		return blogs, nil
	}

	blogs, err := ctl.store.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}

	blog_cache.Set(blogs)
	log.Printf("[blogs] cache refreshed with %d posts", len(blogs))
	return blogs, nil
}
