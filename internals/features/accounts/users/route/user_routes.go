// internals/features/accounts/users/route/user_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "gso_backend/internals/features/accounts/users/controller"
)

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	grp := r.Group("/accounts/users")
	grp.Get("/", ctrl.List)
	grp.Get("/personnel", ctrl.Personnel)
	grp.Patch("/:id/unit", ctrl.AssignUnit)
}
