package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"shrijee_plots/internal/infrastructure/auth"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// devtoken prints a signed bearer token for local testing, using the same
// JWT_SECRET as the API.
func main() {
	user := flag.String("user", "dev-user", "subject (user id)")
	role := flag.String("role", auth.RoleUser, "role: user | admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	tokens, err := auth.NewTokenService(os.Getenv("JWT_SECRET"), *ttl)
	if err != nil {
		logrus.Fatalf("[devtoken] %v", err)
	}
	token, err := tokens.Issue(*user, *role)
	if err != nil {
		logrus.Fatalf("[devtoken] issue failed: %v", err)
	}
	fmt.Println(token)
}
