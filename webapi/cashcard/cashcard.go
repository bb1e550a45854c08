// Package cashcard provides the HTTP endpoints for cash card lookups.
package cashcard

import (
	"errors"
	"strconv"

	"github.com/amirasaad/cashcard/pkg/domain"
	cashcardsvc "github.com/amirasaad/cashcard/pkg/service/cashcard"
	"github.com/amirasaad/cashcard/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for cash card operations. The surface is
// read-only: a single lookup by identifier.
func Routes(app *fiber.App, cashCardSvc *cashcardsvc.Service) {
	group := app.Group("/cashcards")
	group.Get("/:id", GetCashCard(cashCardSvc))
}

// GetCashCard returns cash card information by id
// @Summary Get cash card by id
// @Description Get a cash card by its numeric identifier
// @Tags cashcards
// @Accept json
// @Produce json
// @Param id path int true "Cash card id"
// @Success 200 {object} dto.CashCardRead
// @Failure 404 "cash card not found (empty body)"
// @Failure 500 {object} common.ProblemDetails
// @Router /cashcards/{id} [get]
func GetCashCard(cashCardSvc *cashcardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A token that does not parse as a positive integer cannot name an
		// existing card, so it falls into the same absent branch as an
		// unknown id. The produced status set stays exactly {200, 404}.
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusNotFound).Send(nil)
		}

		card, err := cashCardSvc.Get(c.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// 404 with an empty body per the wire contract.
				return c.Status(fiber.StatusNotFound).Send(nil)
			}
			return common.ProblemDetailsJSON(c, "Failed to get cash card", err)
		}
		return c.Status(fiber.StatusOK).JSON(card)
	}
}
