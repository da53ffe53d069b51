// internals/route/details/requests_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	RequestRoute "gso_backend/internals/features/requests/service_requests/route"
	"gso_backend/internals/jobs"
)

func RequestsAdminRoutes(r fiber.Router, db *gorm.DB, queue *jobs.Queue) {
	RequestRoute.ServiceRequestAdminRoutes(r, db, queue)
}
