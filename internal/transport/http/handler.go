package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gameboard/internal/core"
	"gameboard/internal/transport"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
)

type HTTPHandler struct {
	svc transport.Service
}

func NewHTTPHandler(svc transport.Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// NewFiberApp wires middleware and routes around the service. Dev mode raises
// the per-IP rate limit.
func NewFiberApp(svc transport.Service, devMode bool) *fiber.App {
	h := NewHTTPHandler(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	api := app.Group("/api/v1")

	maxReq := 5
	if devMode {
		maxReq = 50
	}
	// Keyed by peer address
	api.Use(limiter.New(limiter.Config{
		Max:        maxReq,
		Expiration: 1 * time.Second,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, fmt.Sprintf("%d requests per second allowed", maxReq))
		},
	}))

	api.Use(contentTypeValidator)
	api.Use(validationMiddleware)

	api.Post("/games", h.CreateGame)
	api.Get("/games/:gameId", h.GetGame)
	api.Delete("/games/:gameId", h.DeleteGame)
	api.Post("/games/:gameId/moves", h.MakeMove)
	api.Post("/games/:gameId/undo", h.UndoMove)
	api.Get("/games/:gameId/board", h.GetBoard)

	return app
}

// contentTypeValidator rejects POST bodies that are not JSON
func contentTypeValidator(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Next()
	}
	if ct := c.Get(fiber.HeaderContentType); ct != "" && !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		return fiber.NewError(fiber.StatusUnsupportedMediaType, "Content-Type must be application/json")
	}
	return c.Next()
}

// errorHandler renders *fiber.Error by status. Anything else is a service
// error and goes through sendError.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return sendError(c, err)
	}

	resp := core.ErrorResponse{Error: strings.ToLower(utils.StatusMessage(fe.Code)), Details: fe.Message}
	switch {
	case fe.Code == fiber.StatusNotFound:
		resp.Code = core.ErrCodeNotFound
	case fe.Code == fiber.StatusUnsupportedMediaType:
		resp.Code = core.ErrCodeInvalidContent
	case fe.Code == fiber.StatusTooManyRequests:
		resp.Code = core.ErrCodeRateLimitExceeded
	case fe.Code >= fiber.StatusInternalServerError:
		resp.Code = core.ErrCodeInternalError
	default:
		resp.Code = core.ErrCodeInvalidRequest
	}
	return c.Status(fe.Code).JSON(resp)
}

// Health check endpoint
func (h *HTTPHandler) Health(c *fiber.Ctx) error {
	status := "healthy"
	storage := h.svc.GetStorageHealth()
	if storage == "degraded" {
		status = "degraded"
	}

	return c.JSON(core.HealthResponse{
		Status:  status,
		Storage: storage,
		Games:   h.svc.GameCount(),
		Time:    time.Now().Unix(),
	})
}
