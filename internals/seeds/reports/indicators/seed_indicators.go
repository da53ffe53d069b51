// internals/seeds/reports/indicators/seed_indicators.go
package indicators

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
	indicatorModel "gso_backend/internals/features/reports/indicators/model"
)

type IndicatorSeed struct {
	UnitName             string `json:"unit_name"`
	IndicatorCode        string `json:"indicator_code"`
	IndicatorDescription string `json:"indicator_description"`
}

// SeedIndicatorsFromJSON loads per-unit success indicators. Rows referencing a
// unit that has not been seeded are skipped, so run the unit seeder first.
func SeedIndicatorsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var seeds []IndicatorSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, seed := range seeds {
		var unit unitModel.UnitModel
		if err := db.Where("LOWER(unit_name) = LOWER(?)", seed.UnitName).First(&unit).Error; err != nil {
			log.Printf("⚠️ Unit '%s' not found, skipping indicator '%s'", seed.UnitName, seed.IndicatorCode)
			continue
		}

		var existing indicatorModel.SuccessIndicatorModel
		if err := db.Where("indicator_unit_id = ? AND indicator_code = ?", unit.UnitID, seed.IndicatorCode).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Indicator '%s/%s' already exists, skipping...", seed.UnitName, seed.IndicatorCode)
			continue
		}

		indicator := indicatorModel.SuccessIndicatorModel{
			IndicatorUnitID:      unit.UnitID,
			IndicatorCode:        seed.IndicatorCode,
			IndicatorDescription: seed.IndicatorDescription,
			IndicatorIsActive:    true,
		}
		if err := db.Create(&indicator).Error; err != nil {
			log.Printf("❌ Failed to seed indicator '%s/%s': %v", seed.UnitName, seed.IndicatorCode, err)
			continue
		}
		log.Printf("✅ Seeded indicator '%s/%s'", seed.UnitName, seed.IndicatorCode)
	}
}
