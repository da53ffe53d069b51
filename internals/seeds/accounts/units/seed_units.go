// internals/seeds/accounts/units/seed_units.go
package units

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
)

type UnitSeed struct {
	UnitName        string  `json:"unit_name"`
	UnitDescription *string `json:"unit_description"`
}

func SeedUnitsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var seeds []UnitSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, seed := range seeds {
		var existing unitModel.UnitModel
		if err := db.Where("LOWER(unit_name) = LOWER(?)", seed.UnitName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Unit '%s' already exists, skipping...", seed.UnitName)
			continue
		}

		unit := unitModel.UnitModel{
			UnitName:        seed.UnitName,
			UnitDescription: seed.UnitDescription,
			UnitIsActive:    true,
		}
		if err := db.Create(&unit).Error; err != nil {
			log.Printf("❌ Failed to seed unit '%s': %v", seed.UnitName, err)
			continue
		}
		log.Printf("✅ Seeded unit '%s'", seed.UnitName)
	}
}
