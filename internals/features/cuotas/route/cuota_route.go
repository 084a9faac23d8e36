package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cuotaCtl "hermanar_backend/internals/features/cuotas/controller"
)

func CuotaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cuotaCtl.NewCuotaController(db)

	cuotas := r.Group("/cuotas")

	cuotas.Get("/", ctl.GetAll)
	cuotas.Get("/pendientes", ctl.GetPendientes)
	cuotas.Get("/estadisticas", ctl.GetEstadisticas)
	cuotas.Get("/export", ctl.Export)
	cuotas.Get("/anio/:anio", ctl.GetByYear)
	cuotas.Post("/", ctl.Create)
	cuotas.Post("/generar", ctl.Generar)
	cuotas.Put("/:id", ctl.Update)
	cuotas.Patch("/:id/pagado", ctl.TogglePagado)
	cuotas.Patch("/:id/pagar", ctl.MarcarPagada)
	cuotas.Delete("/:id", ctl.Delete)
}
