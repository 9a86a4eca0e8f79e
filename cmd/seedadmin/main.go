package main

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tutorlinkhq/tutor-marketplace/internal/config"
	dbpkg "github.com/tutorlinkhq/tutor-marketplace/internal/db"
	"github.com/tutorlinkhq/tutor-marketplace/internal/logging"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
)

// Seeds the one admin account. Admins are never self-registered; run this
// once per environment with ADMIN_NAME / ADMIN_EMAIL / ADMIN_PASSWORD set.
func main() {

	cfg := config.Load()

	log := logging.New(cfg.Env)
	defer log.Sync()

	name := os.Getenv("ADMIN_NAME")
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Admin"
	}

	db := dbpkg.NewDB(cfg, log)

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Fatal("user already exists", zap.String("email", email))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(models.RoleAdmin),
		Status:       models.UserStatusActive,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin", zap.Error(err))
	}

	log.Info("admin created", zap.String("email", admin.Email), zap.String("id", admin.ID))
}
