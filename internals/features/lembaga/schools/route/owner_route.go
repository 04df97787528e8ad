// file: internals/features/lembaga/schools/route/owner_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "sekolahku_backend/internals/features/lembaga/schools/controller"
)

// SchoolOwnerRoutes mendaftarkan route OWNER (provisioning tenant)
func SchoolOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSchoolController(db, validator.New())

	g := r.Group("/schools")
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

// SchoolPublicRoutes mendaftarkan route PUBLIC (lookup by slug)
func SchoolPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSchoolController(db, validator.New())

	g := r.Group("/schools")
	g.Get("/slug/:slug", ctl.GetBySlug)
}
