// internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	units "gso_backend/internals/seeds/accounts/units"
	activities "gso_backend/internals/seeds/reports/activities"
	indicators "gso_backend/internals/seeds/reports/indicators"
)

// RunAllSeeds loads the baseline catalogs. Order matters: indicators
// reference units by name.
func RunAllSeeds(db *gorm.DB) {
	units.SeedUnitsFromJSON(db, "internals/seeds/accounts/units/data_units.json")
	activities.SeedActivityNamesFromJSON(db, "internals/seeds/reports/activities/data_activity_names.json")
	indicators.SeedIndicatorsFromJSON(db, "internals/seeds/reports/indicators/data_indicators.json")
}
