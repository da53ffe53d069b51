// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gso_backend/internals/constants"
	routeDetails "gso_backend/internals/route/details"
	"gso_backend/internals/jobs"
	"gso_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, queue *jobs.Queue) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// ADMIN → GSO staff and the director
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.AuthJWT(),
		auth.OnlyRolesSlice(constants.RoleErrorGSO("reporting"), constants.GSOAndAbove),
	)

	// PRIVATE (any signed-in account)
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		auth.AuthJWT(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Accounts routes...")
	routeDetails.AccountsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Requests routes...")
	routeDetails.RequestsAdminRoutes(admin, db, queue)

	log.Println("[INFO] Mounting Reports routes...")
	routeDetails.ReportsAdminRoutes(admin, db, queue)

	log.Println("[INFO] Mounting AI routes...")
	routeDetails.AIAdminRoutes(admin, db, queue)

	routeDetails.ProfileRoutes(private, db)
}
