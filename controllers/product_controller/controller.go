package product_controller

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

// Store is the slice of the data layer product handlers need. The product
// operations are shared by the petfood and petAccAndToy collections; the
// user lookup backs the authorization check.
type Store interface {
	ListProducts(ctx context.Context, collection string) ([]models.Product, error)
	GetProduct(ctx context.Context, collection, id string) (*models.Product, error)
	InsertProduct(ctx context.Context, collection string, p models.Product) (*mongo.InsertOneResult, error)
	ReplaceProduct(ctx context.Context, collection, id string, p models.Product) (*mongo.UpdateResult, error)
	PatchProduct(ctx context.Context, collection, id string, patch models.ProductPatch) (*mongo.UpdateResult, error)
	DeleteProduct(ctx context.Context, collection, id string) (*mongo.DeleteResult, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Controller serves one product collection. Two instances are registered,
// one per collection.
type Controller struct {
	store           Store
	collection      string
	label           string
	superAdminEmail string
}

func New(s Store, collection, label, superAdminEmail string) *Controller {
	return &Controller{
		store:           s,
		collection:      collection,
		label:           label,
		superAdminEmail: superAdminEmail,
	}
}

// authorize resolves the requester named in the email query parameter and
// asks the policy for a verdict. It writes the denial response itself and
// reports whether the handler may proceed. Denial happens before any
// mutation, so a forbidden request is always side-effect-free.
func (ctl *Controller) authorize(c *gin.Context, action policy.Action) bool {
	requesterEmail := c.Query("email")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	requester := policy.Requester{Email: requesterEmail}
	user, err := ctl.store.FindUserByEmail(ctx, requesterEmail)
	switch {
	case err == nil:
		requester.Role = user.Role
		requester.Known = true
	case errors.Is(err, store.ErrNotFound):
		// Unknown requester: the policy treats this as a plain deny for the
		// pinned actions rather than a 404.
	default:
		log.Printf("[products] failed to fetch requester %q: %v", requesterEmail, err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return false
	}

	verdict := policy.Decide(action, requester, ctl.superAdminEmail)
	if !verdict.Allowed {
		c.JSON(http.StatusForbidden, models.Message(verdict.Message))
		return false
	}

	return true
}
