// internals/route/details/ai_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AIRoute "gso_backend/internals/features/ai/route"
	"gso_backend/internals/jobs"
)

func AIAdminRoutes(r fiber.Router, db *gorm.DB, queue *jobs.Queue) {
	AIRoute.AIAdminRoutes(r, db, queue)
}
