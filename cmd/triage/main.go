// Command triage seeds a store if needed and runs one classification
// result through the recommendation engine, printing the ranked list as
// JSON. It stands in for the out-of-scope UI as a smoke harness.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/zatekoja/symptom-triage/internal/adapters/database"
	"github.com/zatekoja/symptom-triage/internal/application/services"
	"github.com/zatekoja/symptom-triage/internal/domain/entities"
	"github.com/zatekoja/symptom-triage/internal/infrastructure/clients/bolt"
	"github.com/zatekoja/symptom-triage/internal/infrastructure/observability"
	"github.com/zatekoja/symptom-triage/internal/store"
	"github.com/zatekoja/symptom-triage/pkg/config"
)

func main() {
	specialist := flag.String("specialist", "Dermatologist", "specialist label from the classification oracle")
	confidence := flag.Float64("confidence", 60, "base confidence 0-100")
	conditions := flag.String("conditions", "Psoriasis", "comma-separated condition labels")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("triage", cfg.Env)

	client, err := bolt.NewClient(&cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer client.Close()

	st := store.New(client)
	if err := database.EnsureTables(st); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure tables")
	}

	doctorRepo := database.NewDoctorAdapter(st)
	seeder := services.NewSeedService(
		st,
		database.NewUserAdapter(st),
		doctorRepo,
		database.NewScheduleAdapter(st),
		cfg.Seed,
	)

	ctx := context.Background()
	if err := seeder.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	doctors, err := doctorRepo.GetAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load doctors")
	}

	var conditionList []string
	for _, c := range strings.Split(*conditions, ",") {
		if c = strings.TrimSpace(c); c != "" {
			conditionList = append(conditionList, c)
		}
	}

	recommendations := services.NewRecommendationService().Rank(&entities.Classification{
		SpecialistLabel: *specialist,
		Confidence:      *confidence,
		Conditions:      conditionList,
	}, doctors)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recommendations); err != nil {
		log.Fatal().Err(err).Msg("failed to encode recommendations")
	}
}
