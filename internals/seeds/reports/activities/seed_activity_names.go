// internals/seeds/reports/activities/seed_activity_names.go
package activities

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	activityModel "gso_backend/internals/features/reports/activities/model"
)

type ActivityNameSeed struct {
	ActivityNameName     string   `json:"activity_name_name"`
	ActivityNameKeywords []string `json:"activity_name_keywords"`
}

// SeedActivityNamesFromJSON loads the classification catalog. The catalog must
// always end up containing the "Miscellaneous" fallback row; classification
// refuses to start without it.
func SeedActivityNamesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var seeds []ActivityNameSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, seed := range seeds {
		var existing activityModel.ActivityNameModel
		if err := db.Where("activity_name_name = ?", seed.ActivityNameName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Activity '%s' already exists, skipping...", seed.ActivityNameName)
			continue
		}

		activity := activityModel.ActivityNameModel{
			ActivityNameName:     seed.ActivityNameName,
			ActivityNameKeywords: pq.StringArray(seed.ActivityNameKeywords),
			ActivityNameIsActive: true,
		}
		if err := db.Create(&activity).Error; err != nil {
			log.Printf("❌ Failed to seed activity '%s': %v", seed.ActivityNameName, err)
			continue
		}
		log.Printf("✅ Seeded activity '%s'", seed.ActivityNameName)
	}

	var fallback activityModel.ActivityNameModel
	if err := db.Where("activity_name_name = ?", activityModel.FallbackActivityName).First(&fallback).Error; err != nil {
		log.Printf("⚠️ Catalog has no '%s' row; classification will fail until one is added", activityModel.FallbackActivityName)
	}
}
