// file: internals/features/school/grading/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/school/grading/controller"
	svc "sekolahku_backend/internals/features/school/grading/service"
)

// GradingAdminRoutes mendaftarkan route ADMIN (full CRUD + konversi)
func GradingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewGradingSystemController(
		svc.NewGradingService(svc.NewGormStore(db)),
		validator.New(),
	)

	g := r.Group("/grading-systems")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)

	g.Post("/initialize", ctl.Initialize)
	g.Post("/:id/default", ctl.SetDefault)

	g.Get("/:id/convert", ctl.ConvertScore)
	g.Get("/:id/convert/score", ctl.ConvertGrade)
}
