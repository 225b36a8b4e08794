package operations

import (
	"errors"
	"fmt"

	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/gitfleet/gitfleet/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultLimit = 50

type Handler struct {
	operationsSvc *operations.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(operationsSvc *operations.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		operationsSvc: operationsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/operations")

	r.Use(h.errorsHandler)
	r.Get("/", validation.DecorateWithQueryEx(h.validator, h.list))
	r.Get("/:id", h.get)
}

//	@Summary		List operations
//	@Description	Retrieve recorded fleet operations, newest first
//	@Tags			operations
//	@Produce		json
//	@Param			kind	query	string	false	"Operation kind"
//	@Param			limit	query	int		false	"Maximum number of operations"
//	@Success		200		{array}	OperationResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/operations [get]
//
// List operations.
func (h *Handler) list(c *fiber.Ctx, req *ListRequest) error {
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	items, err := h.operationsSvc.List(c.Context(), operations.Kind(req.Kind), limit)
	if err != nil {
		return fmt.Errorf("failed to list operations: %w", err)
	}

	responses := make([]OperationResponse, len(items))
	for i := range items {
		responses[i] = newOperationResponse(&items[i])
	}

	return c.JSON(responses)
}

//	@Summary		Get an operation
//	@Description	Retrieve a recorded fleet operation with its per-project outcomes
//	@Tags			operations
//	@Produce		json
//	@Param			id	path		string	true	"Operation ID"
//	@Success		200	{object}	OperationResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/operations/{id} [get]
//
// Get an operation.
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	op, err := h.operationsSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get operation: %w", err)
	}

	return c.JSON(newOperationResponse(op))
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, operations.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
