// internals/route/details/profile_routes.go
package details

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "gso_backend/internals/features/accounts/users/model"
)

// ProfileRoutes exposes the signed-in user's own record.
func ProfileRoutes(r fiber.Router, db *gorm.DB) {
	r.Get("/me", func(c *fiber.Ctx) error {
		raw, ok := c.Locals("userID").(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var me userModel.UserModel
		if err := db.Preload("UserUnit").First(&me, "user_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
		}
		return c.JSON(fiber.Map{"data": me})
	})
}
