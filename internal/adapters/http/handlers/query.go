package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// timeQuery parses an optional RFC3339 or date-only query parameter.
// Returns nil when the parameter is absent or malformed.
func timeQuery(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}
