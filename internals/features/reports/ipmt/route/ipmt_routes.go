// internals/features/reports/ipmt/route/ipmt_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ipmtController "gso_backend/internals/features/reports/ipmt/controller"
	"gso_backend/internals/middlewares"
)

// IpmtAdminRoutes mounts preview/save/export under the admin group. Export
// carries its own tighter rate limit since workbook rendering is the heaviest
// request in the system.
func IpmtAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := ipmtController.NewIpmtController(db)

	grp := r.Group("/reports/ipmt")
	grp.Get("/preview", ctrl.Preview)
	grp.Post("/", ctrl.Save)
	grp.Get("/export", middlewares.ExportRateLimiter(), ctrl.Export)
}
