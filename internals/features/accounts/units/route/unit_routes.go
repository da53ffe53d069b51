// internals/features/accounts/units/route/unit_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	unitController "gso_backend/internals/features/accounts/units/controller"
)

func UnitAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := unitController.NewUnitController(db)

	grp := r.Group("/accounts/units")
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
}
