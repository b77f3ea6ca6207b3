package main

import (
	"fmt"
	"log"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/al-mohaimin-farabi/pet-club-backend/services"
	"github.com/al-mohaimin-farabi/pet-club-backend/store"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds the super admin user record
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PET CLUB - Super Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	if cfg.SuperAdminEmail == "" {
		log.Fatal("❌ SUPERADMIN_EMAIL environment variable not set")
	}

	st, err := store.NewStore(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer st.Close()
	log.Println("✓ Connected to MongoDB")

	name := flagName()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := st.UpsertUser(ctx, models.User{
		Email:       cfg.SuperAdminEmail,
		DisplayName: name,
		Role:        models.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("Failed to seed super admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Email:    %s\n", cfg.SuperAdminEmail)
	fmt.Printf("Role:     %s\n", models.RoleAdmin)
	fmt.Printf("Upserted: %d, Modified: %d\n", result.UpsertedCount, result.ModifiedCount)
	fmt.Println()

	// In dev mode (no Firebase credentials) print a signed token so the
	// seeded account can be exercised with curl right away.
	if cfg.FirebaseServiceAccountKey == "" && cfg.JWTSecret != "" {
		token, err := services.NewJWTVerifier(cfg.JWTSecret).Generate(cfg.SuperAdminEmail, name)
		if err != nil {
			log.Fatalf("Failed to generate dev token: %v", err)
		}
		fmt.Println("Dev bearer token (JWT_SECRET mode):")
		fmt.Println(token)
		fmt.Println()
	}

	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Sign in on the frontend with the super admin email")
	fmt.Println("3. Manage roles via PUT /users/tempadmin and PUT /users/admin")
	fmt.Println()
}

// flagName prompts for the display name stored on the super admin record.
func flagName() string {
	var name string
	for {
		fmt.Print("Display name: ")
		fmt.Scanln(&name)
		if name != "" {
			return name
		}
		fmt.Println("❌ Name cannot be empty")
	}
}
