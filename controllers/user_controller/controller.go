package user_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/policy"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	UpsertUser(ctx context.Context, user models.User) (*mongo.UpdateResult, error)
	SetUserRole(ctx context.Context, email string, role models.Role) (*mongo.UpdateResult, error)
}

type Controller struct {
	store           Store
	superAdminEmail string
}

func New(s Store, superAdminEmail string) *Controller {
	return &Controller{store: s, superAdminEmail: superAdminEmail}
}

// resolveRequester looks the requester email up in the user collection and
// builds the policy input. A lookup miss is a deny-shaped requester, not an
// error; only store failures write a response.
func (ctl *Controller) resolveRequester(c *gin.Context, email string) (policy.Requester, bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	requester := policy.Requester{Email: email}
	user, err := ctl.store.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		requester.Role = user.Role
		requester.Known = true
	case errors.Is(err, store.ErrNotFound):
	default:
		log.Printf("[users] failed to fetch requester %q: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return requester, false
	}

	return requester, true
}
