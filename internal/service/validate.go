// internal/service/validate.go
package service

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// local@domain with at least one dot in the domain part
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	firstNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z\s]*$`)
)

// ValidateEmail checks standard address syntax.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateFirstName accepts letters and whitespace only.
func ValidateFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("first name is required")
	}
	if !firstNamePattern.MatchString(name) {
		return fmt.Errorf("first name may only contain letters and spaces")
	}
	return nil
}
