package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldErrors(t *testing.T) {
	fe := fieldErrors{}
	assert.False(t, fe.any())

	fe.add("email", "Kolom email wajib diisi")
	fe.add("email", "Kolom email harus berupa email yang valid")
	fe.add("username", "Kolom username wajib diisi")

	assert.True(t, fe.any())
	assert.Len(t, fe["email"], 2)
	assert.Len(t, fe["username"], 1)
}

func TestCollectValidationErrorsUsesJSONNames(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		FullName string `json:"name" validate:"required"`
	}

	fe := fieldErrors{}
	err := validate.Struct(payload{Email: "not-an-email"})
	assert.Error(t, err)

	collectValidationErrors(err, fe)

	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "name")
	assert.NotContains(t, fe, "FullName")
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Berita Terkini", "terkini"))
	assert.True(t, containsFold("POLITIK", "poli"))
	assert.False(t, containsFold("Olahraga", "politik"))
	assert.False(t, containsFold("", "x"))
	assert.True(t, containsFold("anything", ""))
}
