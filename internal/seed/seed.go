package seed

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/internlink/internal/app/models"
	appRepos "github.com/yigit/internlink/internal/app/repositories"
	"github.com/yigit/internlink/internal/config"
	"github.com/yigit/internlink/internal/db"
	pkgAuth "github.com/yigit/internlink/internal/pkg/auth"
)

// CreateDefaultAdmin ensures an admin account exists so the moderation
// endpoints are reachable on a fresh database. Credentials come from
// ADMIN_EMAIL and ADMIN_PASSWORD, with development defaults.
func CreateDefaultAdmin(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(database.Pool)

	email := config.GetEnv("ADMIN_EMAIL", "admin@internlink.app")
	password := config.GetEnv("ADMIN_PASSWORD", "admin123!")

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Str("email", email).Msg("Admin account already present, skipping seed")
		return nil
	}

	hash, err := pkgAuth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:        email,
		PasswordHash: hash,
		Role:         appModels.RoleAdmin,
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := userRepo.Create(ctx, tx, admin)
		return err
	})
	if err != nil {
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
