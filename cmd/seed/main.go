package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/revufeed/api/config"
	"github.com/revufeed/api/database"
	"github.com/revufeed/api/internal/logger"
	"github.com/revufeed/api/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// seedEntry matches the column-titled keys of the exported feedback data
// files, with DD/MM/YYYY dates.
type seedEntry struct {
	ID              string `json:"Id"`
	Category        string `json:"Category"`
	Description     string `json:"Description"`
	ResolvedStatus  string `json:"Resolved Status"`
	PriorityLevel   string `json:"Priority Level"`
	RelatedSection  string `json:"Related Section"`
	AssignedTo      string `json:"Assigned To"`
	CreatedDate     string `json:"Created Date"`
	LastUpdatedDate string `json:"Last Updated Date"`
}

func main() {
	logger.Init()

	dataPath := flag.String("data", "feedback_data.json", "path to the feedback seed file")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dataPath).Msg("Failed to read seed file")
	}
	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse seed file")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			created, err := time.Parse("02/01/2006", e.CreatedDate)
			if err != nil {
				return err
			}
			updated, err := time.Parse("02/01/2006", e.LastUpdatedDate)
			if err != nil {
				return err
			}
			fb := model.Feedback{
				Category:        e.Category,
				Description:     e.Description,
				ResolvedStatus:  e.ResolvedStatus,
				PriorityLevel:   e.PriorityLevel,
				RelatedSection:  e.RelatedSection,
				AssignedTo:      e.AssignedTo,
				CreatedDate:     created,
				LastUpdatedDate: updated,
			}
			if err := tx.Create(&fb).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load seed data")
	}

	log.Info().Int("count", len(entries)).Msg("Feedback data successfully loaded into the database")
}
