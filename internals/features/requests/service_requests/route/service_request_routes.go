// internals/features/requests/service_requests/route/service_request_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestController "gso_backend/internals/features/requests/service_requests/controller"
	"gso_backend/internals/jobs"
)

func ServiceRequestAdminRoutes(r fiber.Router, db *gorm.DB, queue *jobs.Queue) {
	ctrl := requestController.NewServiceRequestController(db, queue)

	grp := r.Group("/requests")
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Post("/:id/complete", ctrl.Complete)
}
