package controller

import (
	"errors"
	"log"

	"github.com/benbeisheim/hexchess-backend/internal/model"
	"github.com/benbeisheim/hexchess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrGameExists),
		errors.Is(err, service.ErrAlreadyConnected),
		errors.Is(err, model.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrNotAPlayer),
		errors.Is(err, service.ErrNotCreator):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, model.ErrWrongTurn),
		errors.Is(err, model.ErrPieceNotFound),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrPromotionRequired),
		errors.Is(err, model.ErrPromotionNotAllowed):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidCoordinate),
		errors.Is(err, model.ErrInvalidPieceType),
		errors.Is(err, model.ErrInvalidSnapshot),
		errors.Is(err, model.ErrMoveIndexOutOfRange):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request: " + err.Error(),
	})
}

// bodyError answers a request whose body could not be decoded. Domain errors
// raised while decoding keep their own status.
func bodyError(c *fiber.Ctx, err error) error {
	if statusFor(err) == fiber.StatusInternalServerError {
		return badRequest(c, err)
	}
	return respondError(c, err)
}
