// Command seed creates the initial admin user so the dashboard can log in
// on a fresh database.
package main

import (
	"context"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/erudieto-brandon/cofrat-app/internal/config"
	"github.com/erudieto-brandon/cofrat-app/internal/domain"
	"github.com/erudieto-brandon/cofrat-app/internal/repository/postgres"
)

func main() {
	email := flag.String("email", "admin@cofrat.com.br", "admin email")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "Administrador", "admin full name")
	flag.Parse()

	if *password == "" {
		log.Fatal("the -password flag is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	userRepo := postgres.NewUserRepo(db)
	user := &domain.User{
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *name,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Printf("admin user %s created (%s)", user.Email, user.ID)
}
