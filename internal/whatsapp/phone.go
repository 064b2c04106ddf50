package whatsapp

import (
	"regexp"
	"strings"
)

const DefaultCountryCode = "54"

var nonDigit = regexp.MustCompile(`\D`)

// Clean remove tudo que não for dígito.
func Clean(phone string) string {
	return nonDigit.ReplaceAllString(phone, "")
}

// WithCountryCode devolve só dígitos, com o código do país na frente
// quando ainda não estiver lá.
func WithCountryCode(phone, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	clean := Clean(phone)
	if clean == "" || strings.HasPrefix(clean, countryCode) {
		return clean
	}
	return countryCode + clean
}

// IsValid aceita de 10 a 13 dígitos (com ou sem código do país).
func IsValid(phone string) bool {
	n := len(Clean(phone))
	return n >= 10 && n <= 13
}

// Format deixa o número legível; devolve o original quando não reconhece o formato.
func Format(phone string) string {
	clean := Clean(phone)

	if rest, ok := strings.CutPrefix(clean, DefaultCountryCode); ok {
		switch len(rest) {
		case 10:
			return "+54 " + rest[:3] + " " + rest[3:6] + "-" + rest[6:]
		case 11:
			return "+54 " + rest[:2] + " " + rest[2:5] + "-" + rest[5:]
		}
		return phone
	}

	switch len(clean) {
	case 10:
		return clean[:3] + " " + clean[3:6] + "-" + clean[6:]
	case 11:
		return clean[:2] + " " + clean[2:5] + "-" + clean[5:]
	}
	return phone
}
