package schema

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ColumnName converts a Go field name into the default column name:
//  1. strip accents (NFD → remove Mn → NFC)
//  2. snake_case (CreatedAt → created_at, ID → id, HTTPCode → http_code)
//  3. fallback to "col" if empty
func ColumnName(field string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, err := transform.String(t, strings.TrimSpace(field))
	if err != nil {
		ascii = field
	}
	name := strings.Trim(strcase.ToSnake(ascii), "_")
	if name == "" {
		return "col"
	}
	return name
}
