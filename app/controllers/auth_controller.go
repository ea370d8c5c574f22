package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/database"
)

type registerRequest struct {
	Username             string `json:"username" form:"username" validate:"required,max=255"`
	Name                 string `json:"name" form:"name" validate:"required,max=255"`
	Email                string `json:"email" form:"email" validate:"required,email,max=255"`
	Password             string `json:"password" form:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation" validate:"required"`
	Role                 string `json:"role" form:"role" validate:"required,oneof=penulis pembaca"`
	Membership           string `json:"membership" form:"membership" validate:"required,oneof=guest free premium"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin penulis pembaca"`
}

// HandleRegister creates a new user. Admin accounts cannot be registered
// through the API; the write is wrapped in an all-or-nothing transaction.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	if err := validate.Struct(&req); err != nil {
		collectValidationErrors(err, fe)
	}

	if req.Password != "" {
		if err := models.ValidatePasswordStrength(req.Password); err != nil {
			fe.add("password", err.Error())
		}
		if req.PasswordConfirmation != "" && req.Password != req.PasswordConfirmation {
			fe.add("password", "Konfirmasi password tidak cocok")
		}
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	if req.Username != "" {
		if taken, err := userRepo.UsernameExists(req.Username, 0); err != nil {
			return serverErrorResponse(c, "register: username uniqueness check failed", err)
		} else if taken {
			fe.add("username", "Username sudah digunakan")
		}
	}
	if req.Email != "" {
		if taken, err := userRepo.EmailExists(req.Email, 0); err != nil {
			return serverErrorResponse(c, "register: email uniqueness check failed", err)
		} else if taken {
			fe.add("email", "Email sudah digunakan")
		}
	}

	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	user, err := models.CreateUser(req.Username, req.Name, req.Email, req.Password, req.Role, req.Membership)
	if err != nil {
		return serverErrorResponse(c, "register: user construction failed", err)
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		return userRepo.CreateTx(tx, user)
	})
	if err != nil {
		return serverErrorResponse(c, "register: persistence failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User berhasil didaftarkan",
		"data": fiber.Map{
			"id_user":    user.ID,
			"username":   user.Username,
			"name":       user.Name,
			"email":      user.Email,
			"role":       user.Role,
			"membership": user.Membership,
		},
	})
}

// HandleLogin resolves credentials by exact (email, role) match and issues
// an opaque bearer token. The failure message deliberately does not reveal
// which of the three fields was wrong.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	if err := validate.Struct(&req); err != nil {
		fe := fieldErrors{}
		collectValidationErrors(err, fe)
		return validationErrorResponse(c, fe)
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByEmailAndRole(req.Email, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Email, password, atau role salah",
			})
		}
		return serverErrorResponse(c, "login: user lookup failed", err)
	}

	if !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Email, password, atau role salah",
		})
	}

	token, plaintext := models.NewAuthToken(user.ID, "auth_token")
	if err := repository.GetGlobalFactory().GetTokenRepository().Create(token); err != nil {
		return serverErrorResponse(c, "login: token persistence failed", err)
	}

	return c.JSON(fiber.Map{
		"message":      "Login berhasil",
		"access_token": plaintext,
		"token_type":   "Bearer",
		"role":         user.Role,
		"membership":   user.Membership,
	})
}
