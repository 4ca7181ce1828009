package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"agenda-server/internal/auth/processor"
	"agenda-server/internal/observability"

	"github.com/joho/godotenv"
)

// Mints a bearer token the booking workflow uses for /api/internal calls.
func main() {
	service := flag.String("service", "booking", "name of the calling service")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: env.local could not be loaded: %v", err)
		}
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET is not set")
	}

	tokens := processor.New(secret, observability.NewNopLogger())
	token, err := tokens.IssueToken(context.Background(), *service, *ttl)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	fmt.Println(token)
}
