package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mindchat/mindchat_backend/internal/repo"
	enttag "github.com/mindchat/mindchat_backend/internal/repo/tag"
)

// defaultTags is the baseline specialty catalog shown in the directory.
// Psychologists pick from these at registration; missing names are created
// on demand, so the seed only guarantees the catalog starts populated.
var defaultTags = []string{
	"Ansiedad",
	"Depresión",
	"Trastornos Alimenticios",
	"Terapia Cognitivo-Conductual",
	"Terapia Familiar",
	"Terapia Infantil",
	"Trauma",
	"TEPT",
	"Duelo",
	"Psicoeducación",
	"Habilidades Sociales",
	"Adicciones",
	"Sexología",
	"Parejas",
	"Mindfulness",
	"Autismo (TEA)",
	"TDAH",
	"Trastorno Bipolar",
	"Esquizofrenia",
	"Neuropsicología",
	"Psiquiatría General",
}

// SeedDefaultTags inserts any baseline tags that do not exist yet.
func SeedDefaultTags(ctx context.Context, db *repo.Client) error {
	logger := slog.Default()

	for _, name := range defaultTags {
		exists, err := db.Tag.Query().Where(enttag.Name(name)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check tag %q: %w", name, err)
		}
		if exists {
			continue
		}
		if _, err := db.Tag.Create().SetName(name).Save(ctx); err != nil {
			// concurrent migrate may have won the insert
			if repo.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("create tag %q: %w", name, err)
		}
		logger.Info("seeded tag", "name", name)
	}
	return nil
}
