package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/simoamogit/student-tracker/internal/config"
	"github.com/simoamogit/student-tracker/internal/database"
	"github.com/simoamogit/student-tracker/internal/logger"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/schoolyear"
	"github.com/simoamogit/student-tracker/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// School year
	currentYear := schoolyear.Current(time.Now())
	fmt.Printf("Enter School Year (default %s): ", currentYear)
	year, _ := reader.ReadString('\n')
	year = strings.TrimSpace(year)
	if year == "" {
		year = currentYear
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	user, err := userService.Register(ctx, model.RegisterRequest{
		Email:      email,
		Password:   password,
		Name:       name,
		SchoolYear: year,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! User '%s' (%s) created with ID: %s\n", user.Name, user.Email, user.ID)
}
