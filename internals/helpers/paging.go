// file: internals/helpers/paging.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 200
)

type Paging struct {
	Limit  int
	Offset int
}

// ResolvePaging membaca query ?limit= & ?offset= dengan default & cap.
// Nilai tidak valid jatuh ke default, bukan error.
func ResolvePaging(c *fiber.Ctx) Paging {
	p := Paging{Limit: DefaultPageLimit}

	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Limit = n
		}
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}

	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			p.Offset = n
		}
	}
	return p
}
