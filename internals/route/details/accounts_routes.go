// internals/route/details/accounts_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	UnitRoute "gso_backend/internals/features/accounts/units/route"
	UserRoute "gso_backend/internals/features/accounts/users/route"
)

func AccountsAdminRoutes(r fiber.Router, db *gorm.DB) {
	UnitRoute.UnitAdminRoutes(r, db)
	UserRoute.UserAdminRoutes(r, db)
}
