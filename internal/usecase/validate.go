package usecase

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/phenrril/customerdesk/internal/domain"
)

const birthdayLayout = "2006-01-02"

const minPhoneDigits = 10

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidName(s string) bool { return strings.TrimSpace(s) != "" }

// ValidBirthday exige una fecha real con formato YYYY-MM-DD (rechaza mes 13, día 32, 30 de febrero).
func ValidBirthday(s string) bool {
	t, err := time.Parse(birthdayLayout, strings.TrimSpace(s))
	return err == nil && t.Year() >= 1
}

// ValidEmail rechaza cualquier espacio Unicode dentro del valor; el \s de RE2 solo cubre ASCII.
func ValidEmail(s string) bool {
	v := strings.TrimFunc(s, isSpace)
	if strings.IndexFunc(v, isSpace) >= 0 {
		return false
	}
	return emailRe.MatchString(v)
}

// isSpace incluye los separadores de información U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// ValidPhone cuenta solo los dígitos; espacios, guiones, paréntesis y '+' se ignoran.
func ValidPhone(s string) bool {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n >= minPhoneDigits
}

func ValidAddress(s string) bool { return strings.TrimSpace(s) != "" }

func ValidPreferredContact(s string) bool {
	_, ok := domain.ParseContactMethod(s)
	return ok
}

type fieldRule struct {
	field  domain.Field
	valid  func(string) bool
	reason string
}

// rules sigue el orden del formulario: el usuario corrige de arriba hacia abajo.
var rules = []fieldRule{
	{domain.FieldName, ValidName, "Please enter the customer's name."},
	{domain.FieldBirthday, ValidBirthday, "Birthday must be in YYYY-MM-DD format (e.g., 2001-09-15)."},
	{domain.FieldEmail, ValidEmail, "Please enter a valid email address."},
	{domain.FieldPhone, ValidPhone, "Please enter a valid phone number with at least 10 digits."},
	{domain.FieldAddress, ValidAddress, "Please enter the address."},
	{domain.FieldPreferredContact, ValidPreferredContact, "Please choose a preferred contact method."},
}

// ValidateRecord devuelve un *domain.ValidationError con el primer campo que falla, o nil.
func ValidateRecord(in domain.CustomerInput) error {
	for _, r := range rules {
		if !r.valid(in.Value(r.field)) {
			return &domain.ValidationError{Field: r.field, Reason: r.reason}
		}
	}
	return nil
}

// Check expone ValidateRecord como (ok, motivo) para la capa de presentación.
func Check(in domain.CustomerInput) (bool, string) {
	if err := ValidateRecord(in); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return false, ve.Reason
		}
		return false, err.Error()
	}
	return true, ""
}
