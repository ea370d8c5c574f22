package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
)

type updateUserRequest struct {
	Username    *string `json:"username" form:"username"`
	Name        *string `json:"name" form:"name"`
	Email       *string `json:"email" form:"email"`
	OldPassword *string `json:"old_password" form:"old_password"`
	NewPassword *string `json:"new_password" form:"new_password"`
}

// HandleListUsers returns all users as public profiles.
func HandleListUsers(c *fiber.Ctx) error {
	userRepo := repository.GetGlobalFactory().GetUserRepository()
	users, err := userRepo.List()
	if err != nil {
		return serverErrorResponse(c, "users: list failed", err)
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}

	return c.JSON(profiles)
}

// HandleGetUser returns a single user's public profile.
func HandleGetUser(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "User")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "User")
		}
		return serverErrorResponse(c, "users: lookup failed", err)
	}

	return c.JSON(user.PublicProfile())
}

// HandleUpdateUser applies a partial update. Password changes require the
// old password to match.
func HandleUpdateUser(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "User")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "User")
		}
		return serverErrorResponse(c, "users: lookup failed", err)
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	fe := fieldErrors{}
	if req.Username != nil && *req.Username != user.Username {
		taken, err := userRepo.UsernameExists(*req.Username, user.ID)
		if err != nil {
			return serverErrorResponse(c, "users: username uniqueness check failed", err)
		}
		if taken {
			fe.add("username", "Username sudah digunakan")
		}
	}
	if req.Email != nil && *req.Email != user.Email {
		taken, err := userRepo.EmailExists(*req.Email, user.ID)
		if err != nil {
			return serverErrorResponse(c, "users: email uniqueness check failed", err)
		}
		if taken {
			fe.add("email", "Email sudah digunakan")
		}
	}
	if req.NewPassword != nil {
		if req.OldPassword == nil {
			fe.add("old_password", "Kolom old_password wajib diisi saat mengganti password")
		}
		if err := models.ValidatePasswordStrength(*req.NewPassword); err != nil {
			fe.add("new_password", err.Error())
		}
	}
	if fe.any() {
		return validationErrorResponse(c, fe)
	}

	if req.NewPassword != nil {
		if !user.CheckPassword(*req.OldPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Password lama salah",
			})
		}
		if err := user.SetPassword(*req.NewPassword); err != nil {
			return serverErrorResponse(c, "users: password hash failed", err)
		}
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := userRepo.Update(user); err != nil {
		return serverErrorResponse(c, "users: update failed", err)
	}

	return c.JSON(fiber.Map{
		"id_user":  user.ID,
		"username": user.Username,
		"name":     user.Name,
		"email":    user.Email,
	})
}

// HandleDeleteUser removes a user.
func HandleDeleteUser(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return notFoundResponse(c, "User")
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundResponse(c, "User")
		}
		return serverErrorResponse(c, "users: lookup failed", err)
	}

	if err := userRepo.Delete(id); err != nil {
		return serverErrorResponse(c, "users: delete failed", err)
	}

	return c.JSON(fiber.Map{"message": "User berhasil dihapus"})
}
