package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"clinicdesk/internal/api/services"
	"clinicdesk/internal/config"
	"clinicdesk/internal/logging"
)

func main() {
	_ = godotenv.Load()

	staff := flag.String("staff", "", "Staff member the token is issued to")
	ttl := flag.Duration("ttl", 72*time.Hour, "Token lifetime")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New("clinicdesk-token", cfg.LogLevel)

	token, err := services.NewAuthService(cfg.Auth.JWTKey).IssueStaffToken(*staff, *ttl)
	if err != nil {
		logger.Error("failed to issue token", "staff", *staff, "err", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
