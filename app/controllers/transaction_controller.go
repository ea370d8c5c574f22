package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wartapedia/portal-berita/app/models"
	"github.com/wartapedia/portal-berita/app/repository"
	"github.com/wartapedia/portal-berita/internal/pkg/membership"
	"github.com/wartapedia/portal-berita/internal/pkg/usercontext"
)

type transactionRequest struct {
	Amount int64 `json:"amount" form:"amount"`
}

type upgradeRequest struct {
	Token string `json:"token" form:"token"`
}

// HandleTransaction simulates a payment and returns an upgrade token.
// No real gateway is involved; the token is structural and not persisted.
func HandleTransaction(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return unauthorizedResponse(c)
	}

	var req transactionRequest
	if err := c.BodyParser(&req); err != nil {
		fe := fieldErrors{}
		fe.add("request", "Body request tidak valid")
		return validationErrorResponse(c, fe)
	}

	token, err := membership.IssueToken(usercontext.GetUserID(c), req.Amount)
	if err != nil {
		if errors.Is(err, membership.ErrAmountTooSmall) {
			fe := fieldErrors{}
			fe.add("amount", "Jumlah pembayaran minimal 50000")
			return validationErrorResponse(c, fe)
		}
		return serverErrorResponse(c, "transaction: token issue failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Transaksi berhasil. Gunakan token ini untuk upgrade ke premium.",
		"data": fiber.Map{
			"token": token,
		},
	})
}

// HandleUpgrade redeems an upgrade token and promotes the caller to
// premium. A well-formed token is accepted regardless of issuer; the
// second redemption fails because membership is already premium.
func HandleUpgrade(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return unauthorizedResponse(c)
	}

	var req upgradeRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		fe := fieldErrors{}
		fe.add("token", "Kolom token wajib diisi")
		return validationErrorResponse(c, fe)
	}

	if err := membership.ValidateToken(req.Token); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Token upgrade tidak valid. Pastikan Anda telah melakukan transaksi pembayaran terlebih dahulu di endpoint /transaction.",
		})
	}

	userRepo := repository.GetGlobalFactory().GetUserRepository()
	user, err := userRepo.GetByID(usercontext.GetUserID(c))
	if err != nil {
		return serverErrorResponse(c, "upgrade: user lookup failed", err)
	}

	if user.IsPremium() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "User sudah memiliki membership premium",
		})
	}

	user.Membership = models.MEMBERSHIP_PREMIUM
	if err := userRepo.Update(user); err != nil {
		return serverErrorResponse(c, "upgrade: membership update failed", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Membership berhasil diupgrade ke premium",
		"data": fiber.Map{
			"id_user":    user.ID,
			"membership": user.Membership,
		},
	})
}
