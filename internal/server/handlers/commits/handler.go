package commits

import (
	"errors"
	"fmt"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	fleetSvc *fleet.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(fleetSvc *fleet.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		fleetSvc: fleetSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/commits")

	r.Use(h.errorsHandler)
	r.Get("/", validation.DecorateWithQueryEx(h.validator, h.get))
}

//	@Summary		Commit log
//	@Description	Retrieve one page of the commit history of all projects, newest first
//	@Tags			commits
//	@Produce		json
//	@Param			page		query		int		false	"Zero based page index"
//	@Param			size		query		int		false	"Page size"
//	@Param			username	query		string	false	"Author name filter"
//	@Param			project		query		string	false	"Project name filter"
//	@Success		200			{object}	PageResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Router			/commits [get]
//
// Commit log.
func (h *Handler) get(c *fiber.Ctx, req *GetRequest) error {
	log, err := h.fleetSvc.CommitLog(c.Context(), fleet.PageRequest{
		Index:    req.Page,
		Size:     req.Size,
		Username: req.Username,
		Project:  req.Project,
	})
	if err != nil {
		return fmt.Errorf("failed to read commit log: %w", err)
	}

	return c.JSON(PageResponse{
		Index:      log.Index,
		Size:       log.Size,
		TotalData:  log.TotalData,
		TotalPages: log.TotalPages,
		Data: lo.Map(log.Data, func(e fleet.CommitLogEntry, _ int) EntryResponse {
			return EntryResponse{
				Project:    e.ProjectName,
				Username:   e.Username,
				CommitID:   e.CommitID,
				Message:    e.Message,
				CommitTime: e.CommitTime,
			}
		}),
		Users: log.Users,
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, fleet.ErrInvalidArgument) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
