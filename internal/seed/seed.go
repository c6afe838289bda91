// Package seed creates the default data the application needs at startup.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/app/repositories"
	"github.com/selim/lostfound/internal/config"
	"github.com/selim/lostfound/internal/pkg/auth"
)

// CreateDefaultData seeds the bootstrap administrator account so staff can
// log in on a fresh database. An administrator that already exists is left
// untouched, so re-running at every startup is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("No bootstrap administrator configured, skipping seed")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash administrator password: %w", err)
	}

	adminRepo := repositories.NewAdministratorRepository(dbPool)
	id, err := adminRepo.Create(ctx, &models.Administrator{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAdministratorExists) {
			lgr.Debug().Str("email", cfg.Admin.Email).Msg("Bootstrap administrator already exists")
			return nil
		}
		return fmt.Errorf("failed to seed administrator: %w", err)
	}

	lgr.Info().Int64("adminId", id).Str("email", cfg.Admin.Email).Msg("Bootstrap administrator created")
	return nil
}
