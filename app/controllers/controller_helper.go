package controllers

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func init() {
	// Report fields under their json names so 422 payloads match the wire
	// contract, not Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// fieldErrors collects per-field validation messages for 422 responses.
type fieldErrors map[string][]string

func (fe fieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe fieldErrors) any() bool {
	return len(fe) > 0
}

// collectValidationErrors maps validator errors onto per-field messages
// using the struct's json tag names.
func collectValidationErrors(err error, fe fieldErrors) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fe.add("request", err.Error())
		return
	}
	for _, verr := range verrs {
		field := verr.Field()
		switch verr.Tag() {
		case "required":
			fe.add(field, fmt.Sprintf("Kolom %s wajib diisi", field))
		case "email":
			fe.add(field, fmt.Sprintf("Kolom %s harus berupa email yang valid", field))
		case "max":
			fe.add(field, fmt.Sprintf("Kolom %s maksimal %s karakter", field, verr.Param()))
		case "min":
			fe.add(field, fmt.Sprintf("Kolom %s minimal %s karakter", field, verr.Param()))
		case "oneof":
			fe.add(field, fmt.Sprintf("Kolom %s harus salah satu dari: %s", field, verr.Param()))
		default:
			fe.add(field, fmt.Sprintf("Kolom %s tidak valid", field))
		}
	}
}

func validationErrorResponse(c *fiber.Ctx, fe fieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation error",
		"errors":  fe,
	})
}

func notFoundResponse(c *fiber.Ctx, resource string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": resource + " tidak ditemukan",
	})
}

func conflictResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func unauthorizedResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Unauthorized",
	})
}

func forbiddenResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"message": "Unauthorized",
	})
}

// serverErrorResponse logs the underlying error and returns a generic
// message. Internal detail never reaches the caller.
func serverErrorResponse(c *fiber.Ctx, context string, err error) error {
	log.Printf("%s: %v", context, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Terjadi kesalahan pada server",
	})
}

// containsFold reports whether needle occurs in haystack ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// parseIDParam reads a numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
