// file: internals/features/school/grading/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/school/grading/controller"
	svc "sekolahku_backend/internals/features/school/grading/service"
)

// GradingUserRoutes mendaftarkan route USER (read-only + konversi)
func GradingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewGradingSystemController(
		svc.NewGradingService(svc.NewGormStore(db)),
		validator.New(),
	)

	g := r.Group("/grading-systems")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/convert", ctl.ConvertScore)
	g.Get("/:id/convert/score", ctl.ConvertGrade)
}
