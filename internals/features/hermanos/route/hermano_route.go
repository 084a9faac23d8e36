package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cuotaCtl "hermanar_backend/internals/features/cuotas/controller"
	hermanoCtl "hermanar_backend/internals/features/hermanos/controller"
)

func HermanoRoutes(r fiber.Router, db *gorm.DB) {
	ctl := hermanoCtl.NewHermanoController(db)
	cuotas := cuotaCtl.NewCuotaController(db)

	hermanos := r.Group("/hermanos")

	hermanos.Get("/", ctl.GetAll)
	hermanos.Get("/activos", ctl.GetActivos)
	hermanos.Get("/search", ctl.Search)
	hermanos.Post("/", ctl.Create)
	hermanos.Post("/import-legacy", ctl.ImportLegacy)
	hermanos.Get("/:id", ctl.GetByID)
	hermanos.Put("/:id", ctl.Update)
	hermanos.Patch("/:id/familia", ctl.UpdateFamilia)
	hermanos.Patch("/:id/baja", ctl.SetInactive)
	hermanos.Delete("/:id", ctl.Delete)

	hermanos.Get("/:id/cuotas", cuotas.GetByHermano)
}
