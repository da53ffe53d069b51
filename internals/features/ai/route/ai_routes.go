// internals/features/ai/route/ai_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aiController "gso_backend/internals/features/ai/controller"
	"gso_backend/internals/jobs"
)

func AIAdminRoutes(r fiber.Router, db *gorm.DB, queue *jobs.Queue) {
	ctrl := aiController.NewAIController(db, queue)

	grp := r.Group("/ai")
	grp.Post("/wars/:id/summary", ctrl.GenerateWarDescription)
	grp.Post("/ipmt/:id/summary", ctrl.GenerateIpmtSummary)
	grp.Get("/summaries", ctrl.ListSummaries)
}
