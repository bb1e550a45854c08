// Package webapi provides the HTTP surface of the cashcard service. Domain
// endpoints live in sub-packages; this package owns app construction and the
// middleware stack.
package webapi

import (
	"strings"

	"github.com/amirasaad/cashcard/pkg/app"
	cashcardweb "github.com/amirasaad/cashcard/webapi/cashcard"
	"github.com/amirasaad/cashcard/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with the middleware stack and all routes.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Rate limiting keyed by client IP. Uses X-Forwarded-For when behind a
	// proxy, falling back to X-Real-IP and then the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				fiber.ErrTooManyRequests,
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Cash Card API is running")
	})

	cashcardweb.Routes(fiberApp, app.CashCardService)
	return fiberApp
}
