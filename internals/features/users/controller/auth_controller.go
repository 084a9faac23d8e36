package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hermanar_backend/internals/configs"
	dto "hermanar_backend/internals/features/users/dto"
	model "hermanar_backend/internals/features/users/model"
	helper "hermanar_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload no válido")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user model.UsuarioModel
	if err := h.DB.Where("usuario_user_name = ?", req.UserName).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Usuario o contraseña incorrectos")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !user.UsuarioIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Tu cuenta ha sido desactivada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UsuarioPassword), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuario o contraseña incorrectos")
	}

	token, err := generateToken(user)
	if err != nil {
		log.Println("[ERROR] No se pudo firmar el token:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Error al generar el token")
	}

	return helper.JsonOK(c, "Sesión iniciada", dto.LoginResponse{
		Token:    token,
		UserName: user.UsuarioUserName,
	})
}

func generateToken(user model.UsuarioModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UsuarioID,
		"user_name": user.UsuarioUserName,
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(configs.JWTExpiration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
