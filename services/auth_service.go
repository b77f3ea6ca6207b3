package services

import (
	"context"
	"errors"
	"log"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
)

// AuthClaims is the verified identity extracted from a bearer credential.
// Email is the only claim authorization relies on.
type AuthClaims struct {
	Email string
	Name  string
}

// TokenVerifier validates a raw bearer token and returns the identity it
// asserts. Implementations: FirebaseVerifier (production) and JWTVerifier
// (dev/test).
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (*AuthClaims, error)
}

// NewVerifier picks the verifier from configuration: Firebase when a service
// account key is present, otherwise the HS256 dev verifier.
func NewVerifier(ctx context.Context, cfg config.Config) (TokenVerifier, error) {
	if cfg.FirebaseServiceAccountKey != "" {
		log.Println("✅ Using Firebase token verification")
		return NewFirebaseVerifier(ctx, []byte(cfg.FirebaseServiceAccountKey))
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("neither FIREBASE_SERVICE_ACCOUNT_KEY nor JWT_SECRET is set")
	}

	log.Println("⚠️ FIREBASE_SERVICE_ACCOUNT_KEY not set, using HS256 dev verifier")
	return NewJWTVerifier(cfg.JWTSecret), nil
}
