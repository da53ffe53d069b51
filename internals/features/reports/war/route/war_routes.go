// internals/features/reports/war/route/war_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	warController "gso_backend/internals/features/reports/war/controller"
	"gso_backend/internals/jobs"
)

// WarAdminRoutes mounts the accomplishment report surface under the admin group.
func WarAdminRoutes(r fiber.Router, db *gorm.DB, queue *jobs.Queue) {
	ctrl := warController.NewWarController(db, queue)

	grp := r.Group("/reports")
	grp.Get("/accomplishments", ctrl.AccomplishmentReport)
	grp.Post("/wars", ctrl.Create)
	grp.Patch("/wars/:id", ctrl.Update)
	grp.Get("/wars/:id/description", ctrl.GetDescription)
}
