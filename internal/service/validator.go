package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aeroops/lostfound/internal/entity"
)

const (
	EmployeeNumberMinLen = 3
	EmployeeNumberMaxLen = 20
	NameMinLen           = 2
	NameMaxLen           = 50
	PasswordMinLen       = 8
	PasswordMaxLen       = 72
	ItemNameMinLen       = 2
	ItemNameMaxLen       = 120
	DescriptionMaxLen    = 2000
)

var (
	employeeNumberRegexp = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	personNameRegexp     = regexp.MustCompile(`^[A-Za-zÀ-ÿ]+([ '-][A-Za-zÀ-ÿ]+)*$`)
	flightNumberRegexp   = regexp.MustCompile(`^[A-Z]{2,3}[0-9]{1,4}$`)
	emailRegexp          = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp          = regexp.MustCompile(`^\+?[0-9][0-9()\s-]{5,19}$`)
)

func ValidateEmployeeNumber(number string) error {
	if len(number) < EmployeeNumberMinLen || len(number) > EmployeeNumberMaxLen {
		return fmt.Errorf("%w: employee number must be %d-%d characters", entity.ErrIncorrectRequestBody, EmployeeNumberMinLen, EmployeeNumberMaxLen)
	}

	if !employeeNumberRegexp.MatchString(number) {
		return fmt.Errorf("%w: employee number may contain only letters, digits and dashes", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateName(name string) error {
	nameLen := utf8.RuneCountInString(name)
	if nameLen < NameMinLen || nameLen > NameMaxLen {
		return fmt.Errorf("%w: name must be %d-%d characters", entity.ErrIncorrectRequestBody, NameMinLen, NameMaxLen)
	}

	if !personNameRegexp.MatchString(name) {
		return fmt.Errorf("%w: invalid name format", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen || len(password) > PasswordMaxLen {
		return fmt.Errorf("%w: password must be %d-%d characters", entity.ErrIncorrectRequestBody, PasswordMinLen, PasswordMaxLen)
	}

	return nil
}

func ValidateItemName(name string) error {
	nameLen := utf8.RuneCountInString(strings.TrimSpace(name))
	if nameLen < ItemNameMinLen || nameLen > ItemNameMaxLen {
		return fmt.Errorf("%w: item name must be %d-%d characters", entity.ErrIncorrectRequestBody, ItemNameMinLen, ItemNameMaxLen)
	}

	return nil
}

func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > DescriptionMaxLen {
		return fmt.Errorf("%w: description must not exceed %d characters", entity.ErrIncorrectRequestBody, DescriptionMaxLen)
	}

	return nil
}

// NormalizeFlightNumber uppercases and strips separators so "ac 123" and
// "AC-123" store identically.
func NormalizeFlightNumber(flightNumber string) string {
	normalized := strings.ToUpper(strings.TrimSpace(flightNumber))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")

	return normalized
}

func ValidateFlightNumber(flightNumber string) error {
	if !flightNumberRegexp.MatchString(flightNumber) {
		return fmt.Errorf("%w: invalid flight number %q", entity.ErrIncorrectRequestBody, flightNumber)
	}

	return nil
}

// ValidateCustomer checks the recipient details a delivery record must
// carry. All four identity fields are mandatory.
func ValidateCustomer(c entity.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", entity.ErrIncorrectRequestBody)
	}

	if !emailRegexp.MatchString(c.Email) {
		return fmt.Errorf("%w: invalid customer email", entity.ErrIncorrectRequestBody)
	}

	if !phoneRegexp.MatchString(c.Phone) {
		return fmt.Errorf("%w: invalid customer phone", entity.ErrIncorrectRequestBody)
	}

	if strings.TrimSpace(c.Identification) == "" {
		return fmt.Errorf("%w: customer identification is required", entity.ErrIncorrectRequestBody)
	}

	return nil
}
