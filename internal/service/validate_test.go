package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maheshk/campusconnect-backend/internal/service"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"ann@example.com",
		"a.b+tag@sub.example.org",
		"ANN@EXAMPLE.COM",
	}
	for _, email := range valid {
		assert.NoError(t, service.ValidateEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@example.com",
		"spaces in@example.com",
		"two@@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, service.ValidateEmail(email), email)
	}
}

func TestValidateFirstName(t *testing.T) {
	valid := []string{"Ann", "Mary Jane", "bob"}
	for _, name := range valid {
		assert.NoError(t, service.ValidateFirstName(name), name)
	}

	invalid := []string{"", "   ", "John123", "Ann!", "12", " Ann"}
	for _, name := range invalid {
		assert.Error(t, service.ValidateFirstName(name), name)
	}
}

func TestRenderTemplate(t *testing.T) {
	out := service.RenderTemplate("Hi {first_name}, {title}", map[string]string{
		"first_name": "Ann",
		"title":      "News",
	})
	assert.Equal(t, "Hi Ann, News", out)
}
