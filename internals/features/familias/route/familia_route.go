package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	familiaCtl "hermanar_backend/internals/features/familias/controller"
	hermanoCtl "hermanar_backend/internals/features/hermanos/controller"
)

func FamiliaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := familiaCtl.NewFamiliaController(db)
	hermanos := hermanoCtl.NewHermanoController(db)

	familias := r.Group("/familias")

	familias.Get("/", ctl.GetAll)
	familias.Get("/search", ctl.Search)
	familias.Post("/", ctl.Create)
	familias.Get("/:id", ctl.GetByID)
	familias.Get("/:id/stats", ctl.GetStats)
	familias.Get("/:id/direccion", ctl.GetWithAddress)
	familias.Put("/:id", ctl.Update)
	familias.Delete("/:id", ctl.Delete)

	familias.Get("/:id/hermanos", hermanos.GetByFamilia)
}
