package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "hermanar_backend/internals/features/users/controller"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/login", ctl.Login)
}
