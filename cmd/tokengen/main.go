package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"pantryshare/internal/pkg/config"
	"pantryshare/internal/pkg/identity"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Issues a signed bearer token for a user id. Development helper for driving
// the API without the external identity provider.
func main() {
	userIDFlag := flag.String("user", "", "user id to embed in the token (random when empty)")
	ttlFlag := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	userID := uuid.New()
	if *userIDFlag != "" {
		userID, err = uuid.Parse(*userIDFlag)
		if err != nil {
			log.Fatalf("invalid user id: %v", err)
		}
	}

	svc := identity.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	token, err := svc.GenerateToken(userID, *ttlFlag)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Printf("user:  %s\n", userID)
	fmt.Printf("token: %s\n", token)
}
