// Command tokengen issues a bearer token for a user id, signed with the
// configured JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/auctionhouse/internal/config"
	"github.com/GlebRadaev/auctionhouse/pkg/auth"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	userID := flag.Int("user", 0, "user id to issue the token for")
	admin := flag.Bool("admin", false, "grant admin routes")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("can't load config")
	}
	if *userID <= 0 {
		log.Fatal().Int("user", *userID).Msg("user id must be positive")
	}

	token, err := auth.NewJWTService(cfg.JWTSecret).GenerateJWT(*userID, *admin, time.Now().Add(*ttl))
	if err != nil {
		log.Fatal().Err(err).Msg("can't sign token")
	}
	fmt.Println(token)
}
