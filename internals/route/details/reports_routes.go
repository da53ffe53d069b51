// internals/route/details/reports_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ActivityRoute "gso_backend/internals/features/reports/activities/route"
	IndicatorRoute "gso_backend/internals/features/reports/indicators/route"
	IpmtRoute "gso_backend/internals/features/reports/ipmt/route"
	WarRoute "gso_backend/internals/features/reports/war/route"
	"gso_backend/internals/jobs"
)

func ReportsAdminRoutes(r fiber.Router, db *gorm.DB, queue *jobs.Queue) {
	ActivityRoute.ActivityAdminRoutes(r, db)
	IndicatorRoute.IndicatorAdminRoutes(r, db)
	WarRoute.WarAdminRoutes(r, db, queue)
	IpmtRoute.IpmtAdminRoutes(r, db)
}
