package fleet

import (
	"errors"
	"fmt"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/server/handlers/reports"
	"github.com/gitfleet/gitfleet/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
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
	r = r.Group("/fleet")

	r.Use(h.errorsHandler)
	r.Post("/sync", h.sync)
	r.Post("/branches", validation.DecorateWithBodyEx(h.validator, h.createBranch))
	r.Post("/branches/switch", validation.DecorateWithBodyEx(h.validator, h.switchBranch))
	r.Delete("/branches/current", h.deleteBranch)
	r.Post("/tags", validation.DecorateWithBodyEx(h.validator, h.createTag))
	r.Delete("/tags/:name", h.deleteTag)
	r.Post("/tags/:name/branches", validation.DecorateWithBodyEx(h.validator, h.createBranchFromTag))
	r.Post("/merge", validation.DecorateWithBodyEx(h.validator, h.merge))
	r.Post("/push", validation.DecorateWithBodyEx(h.validator, h.push))
}

//	@Summary		Synchronize projects
//	@Description	Clone missing working copies and pull existing ones
//	@Tags			fleet
//	@Produce		json
//	@Success		200	{object}	reports.Response
//	@Router			/fleet/sync [post]
//
// Synchronize projects.
func (h *Handler) sync(c *fiber.Ctx) error {
	report, err := h.fleetSvc.Sync(c.Context())
	if err != nil {
		return fmt.Errorf("failed to sync projects: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Create a branch
//	@Description	Create and check out a branch at HEAD of every project
//	@Tags			fleet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BranchRequest	true	"Branch"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/branches [post]
//
// Create a branch.
func (h *Handler) createBranch(c *fiber.Ctx, req *BranchRequest) error {
	report, err := h.fleetSvc.CreateBranch(c.Context(), req.Branch)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Switch branch
//	@Description	Check out a branch in every project, fetching it from origin when only remote
//	@Tags			fleet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BranchRequest	true	"Branch"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/branches/switch [post]
//
// Switch branch.
func (h *Handler) switchBranch(c *fiber.Ctx, req *BranchRequest) error {
	report, err := h.fleetSvc.SwitchBranch(c.Context(), req.Branch)
	if err != nil {
		return fmt.Errorf("failed to switch branch: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Delete current branch
//	@Description	Delete the checked out branch of every project locally and on origin
//	@Tags			fleet
//	@Produce		json
//	@Success		200	{object}	reports.Response
//	@Router			/fleet/branches/current [delete]
//
// Delete current branch.
func (h *Handler) deleteBranch(c *fiber.Ctx) error {
	report, err := h.fleetSvc.DeleteBranch(c.Context())
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Create a tag
//	@Description	Tag HEAD of every project and push the tags
//	@Tags			fleet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		TagRequest	true	"Tag"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/tags [post]
//
// Create a tag.
func (h *Handler) createTag(c *fiber.Ctx, req *TagRequest) error {
	report, err := h.fleetSvc.CreateTag(c.Context(), req.Tag, req.Message)
	if err != nil {
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Delete a tag
//	@Description	Delete a tag locally and on origin in every project
//	@Tags			fleet
//	@Produce		json
//	@Param			name	path		string	true	"Tag name"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/tags/{name} [delete]
//
// Delete a tag.
func (h *Handler) deleteTag(c *fiber.Ctx) error {
	report, err := h.fleetSvc.DeleteTag(c.Context(), utils.CopyString(c.Params("name")))
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Create a branch from a tag
//	@Description	Create and check out a branch at a tag in every project
//	@Tags			fleet
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string				true	"Tag name"
//	@Param			request	body		TagBranchRequest	true	"Branch"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/tags/{name}/branches [post]
//
// Create a branch from a tag.
func (h *Handler) createBranchFromTag(c *fiber.Ctx, req *TagBranchRequest) error {
	report, err := h.fleetSvc.CreateBranchFromTag(c.Context(), utils.CopyString(c.Params("name")), req.Branch)
	if err != nil {
		return fmt.Errorf("failed to create branch from tag: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Merge branches
//	@Description	Merge source into target in every project and push the result
//	@Tags			fleet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MergeRequest	true	"Merge"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/merge [post]
//
// Merge branches.
func (h *Handler) merge(c *fiber.Ctx, req *MergeRequest) error {
	report, err := h.fleetSvc.Merge(c.Context(), req.Target, req.Source, req.Message)
	if err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Push changes
//	@Description	Commit pending changes and push all branches of every project
//	@Tags			fleet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PushRequest	true	"Push"
//	@Success		200		{object}	reports.Response
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/fleet/push [post]
//
// Push changes.
func (h *Handler) push(c *fiber.Ctx, req *PushRequest) error {
	report, err := h.fleetSvc.Push(c.Context(), req.Message)
	if err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}

	return c.JSON(reports.New(report))
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
