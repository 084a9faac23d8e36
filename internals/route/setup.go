package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cuotaRoute "hermanar_backend/internals/features/cuotas/route"
	familiaRoute "hermanar_backend/internals/features/familias/route"
	hermanoRoute "hermanar_backend/internals/features/hermanos/route"
	authRoute "hermanar_backend/internals/features/users/route"
	authMiddleware "hermanar_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Configurando rutas...")

	// Público: solo el login
	public := app.Group("/api")
	authRoute.AuthRoutes(public, db)

	// Administración: todo lo demás requiere token
	admin := app.Group("/api", authMiddleware.AuthMiddleware(db))
	hermanoRoute.HermanoRoutes(admin, db)
	familiaRoute.FamiliaRoutes(admin, db)
	cuotaRoute.CuotaRoutes(admin, db)
}
