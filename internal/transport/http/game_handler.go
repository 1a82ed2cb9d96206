package http

import (
	"errors"

	"gameboard/internal/core"

	"github.com/gofiber/fiber/v2"
)

// CreateGame starts a game of the requested variant
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*core.CreateGameRequest)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "validation middleware not run")
	}

	// Unknown names start an empty board
	variant, _ := core.ParseVariant(req.Variant)

	turn := core.ColorWhite
	if req.Turn != "" {
		turn, _ = core.ParseColor(req.Turn)
	}

	id, err := h.svc.CreateGame(variant, req.Layout, turn)
	if err != nil {
		return err
	}

	view, err := h.svc.GetGame(id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetGame returns the current state of a game
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	view, err := h.svc.GetGame(c.Params("gameId"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// MakeMove submits a move for the side to move
func (h *HTTPHandler) MakeMove(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*core.MoveRequest)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "validation middleware not run")
	}

	view, err := h.svc.SubmitMove(c.Params("gameId"), req.Move)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// UndoMove takes back the latest move
func (h *HTTPHandler) UndoMove(c *fiber.Ctx) error {
	view, err := h.svc.Undo(c.Params("gameId"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// DeleteGame removes a game
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	if err := h.svc.DeleteGame(c.Params("gameId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetBoard returns the ASCII board with its rows and FEN when available
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	b, err := h.svc.Board(c.Params("gameId"))
	if err != nil {
		return err
	}
	return c.JSON(b)
}

// sendError maps service errors to status codes and error codes
func sendError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	resp := core.ErrorResponse{
		Error:   "internal server error",
		Code:    core.ErrCodeInternalError,
		Details: err.Error(),
	}

	switch {
	case errors.Is(err, core.ErrGameNotFound):
		status, resp.Error, resp.Code = fiber.StatusNotFound, "game not found", core.ErrCodeGameNotFound
	case errors.Is(err, core.ErrNothingToUndo):
		status, resp.Error, resp.Code = fiber.StatusBadRequest, "nothing to undo", core.ErrCodeNothingToUndo
	case errors.Is(err, core.ErrInvalidLayout):
		status, resp.Error, resp.Code = fiber.StatusBadRequest, "invalid layout", core.ErrCodeInvalidLayout
	case errors.Is(err, core.ErrMalformedMove),
		errors.Is(err, core.ErrEmptySquare),
		errors.Is(err, core.ErrWrongTurn),
		errors.Is(err, core.ErrIllegalMove),
		errors.Is(err, core.ErrOutOfBounds):
		status, resp.Error, resp.Code = fiber.StatusBadRequest, "invalid move", core.ErrCodeInvalidMove
	}

	return c.Status(status).JSON(resp)
}
