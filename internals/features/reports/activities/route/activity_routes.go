// internals/features/reports/activities/route/activity_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "gso_backend/internals/features/reports/activities/controller"
)

func ActivityAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityNameController(db)

	grp := r.Group("/reports/activities")
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
	grp.Post("/classify", ctrl.Classify)
}
