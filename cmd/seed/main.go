package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/symptom-triage/internal/adapters/database"
	"github.com/zatekoja/symptom-triage/internal/application/services"
	"github.com/zatekoja/symptom-triage/internal/infrastructure/clients/bolt"
	"github.com/zatekoja/symptom-triage/internal/infrastructure/observability"
	"github.com/zatekoja/symptom-triage/internal/store"
	"github.com/zatekoja/symptom-triage/pkg/config"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("triage-seed", cfg.Env)

	client, err := bolt.NewClient(&cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer client.Close()

	st := store.New(client)
	if err := database.EnsureTables(st); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure tables")
	}

	seeder := services.NewSeedService(
		st,
		database.NewUserAdapter(st),
		database.NewDoctorAdapter(st),
		database.NewScheduleAdapter(st),
		cfg.Seed,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Str("path", cfg.Store.Path).Msg("seed complete")
}
