// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolRoute "sekolahku_backend/internals/features/lembaga/schools/route"
	gradingRoute "sekolahku_backend/internals/features/school/grading/route"
	middlewares "sekolahku_backend/internals/middlewares"
	schoolkuMiddleware "sekolahku_backend/internals/middlewares/auth_school"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	schoolRoute.SchoolPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	gradingRoute.GradingUserRoutes(private, db)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	gradingRoute.GradingAdminRoutes(admin, db)

	// ===================== OWNER (GLOBAL) =====================
	log.Println("[INFO] Setting up OWNER group...")
	owner := app.Group("/api/o",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		middlewares.ProvisioningRateLimiter(),
	)
	schoolRoute.SchoolOwnerRoutes(owner, db)
}
