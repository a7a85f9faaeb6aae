package messaging

import (
	"regexp"

	"visitacare-backend/models"
)

// Fallbacks applied when the context has no value for the placeholder.
const (
	FallbackName  = "friend"
	FallbackEvent = "our Sunday service"
)

var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// Merge substitutes {key} placeholders in template with values from ctx.
// The template is scanned exactly once, so a value that itself contains
// {token}-shaped text is never re-substituted. {name} and {event} fall back
// to fixed friendly defaults when absent or empty; any other placeholder
// without a context value is left verbatim rather than silently deleted.
func Merge(template string, ctx map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		if value, ok := ctx[key]; ok && value != "" {
			return value
		}
		switch key {
		case "name":
			return FallbackName
		case "event":
			return FallbackEvent
		}
		return token
	})
}

// VisitorContext builds the standard merge context for a visitor.
func VisitorContext(visitor models.Visitor) map[string]string {
	return map[string]string{
		"name":         visitor.Name,
		"phone":        visitor.Phone,
		"congregation": visitor.OriginCongregation,
	}
}
