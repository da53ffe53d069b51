// internals/features/reports/indicators/route/indicator_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	indicatorController "gso_backend/internals/features/reports/indicators/controller"
)

func IndicatorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := indicatorController.NewSuccessIndicatorController(db)

	grp := r.Group("/reports/indicators")
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
