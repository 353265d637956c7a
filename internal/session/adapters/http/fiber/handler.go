package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"control-center-analytics/internal/session/core/domain"
	"control-center-analytics/internal/session/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ContextUseCase interface {
	SaveContext(ctx context.Context, in usecase.SaveContextInput) (*domain.DashboardContext, error)
	GetActive(ctx context.Context) (*domain.DashboardContext, error)
	Switch(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type ContextHandler struct {
	uc ContextUseCase
}

func NewContextHandler(uc ContextUseCase) *ContextHandler {
	return &ContextHandler{uc: uc}
}

// SaveContext godoc
// @Summary Save a dashboard context
// @Tags Contexts
// @Accept json
// @Produce json
// @Param request body SaveContextRequest true "Context"
// @Success 201 {object} ContextResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/contexts [post]
func (h *ContextHandler) SaveContext(c *fiber.Ctx) error {
	var req SaveContextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "invalid JSON body",
		})
	}

	saved, err := h.uc.SaveContext(c.Context(), usecase.SaveContextInput{
		Name:            req.Name,
		MerchantID:      req.MerchantID,
		City:            req.City,
		VehicleCategory: req.VehicleCategory,
		Metric:          req.Metric,
		Cumulative:      req.Cumulative,
		TopN:            req.TopN,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toResponse(saved))
}

// GetActiveContext godoc
// @Summary Fetch the active dashboard context
// @Tags Contexts
// @Produce json
// @Success 200 {object} ContextResponse
// @Success 204 "no active context"
// @Router /v1/contexts/active [get]
func (h *ContextHandler) GetActiveContext(c *fiber.Ctx) error {
	active, err := h.uc.GetActive(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	if active == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Status(http.StatusOK).JSON(toResponse(active))
}

// ActivateContext godoc
// @Summary Switch the active dashboard context
// @Tags Contexts
// @Produce json
// @Param id path string true "Context id"
// @Success 204 "switched"
// @Failure 404 {object} ErrorResponse
// @Router /v1/contexts/{id}/activate [put]
func (h *ContextHandler) ActivateContext(c *fiber.Ctx) error {
	if err := h.uc.Switch(c.Context(), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ClearContexts godoc
// @Summary Remove every saved context (logout)
// @Tags Contexts
// @Success 204 "cleared"
// @Router /v1/contexts [delete]
func (h *ContextHandler) ClearContexts(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context()); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func toResponse(ctx *domain.DashboardContext) ContextResponse {
	return ContextResponse{
		ID:              ctx.ID,
		Name:            ctx.Name,
		MerchantID:      ctx.MerchantID,
		City:            ctx.City,
		VehicleCategory: ctx.VehicleCategory,
		Metric:          ctx.Metric,
		Cumulative:      ctx.Cumulative,
		TopN:            ctx.TopN,
		Active:          ctx.Active,
		CreatedAt:       ctx.CreatedAt.Format(time.RFC3339),
	}
}

func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidContext):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_context",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrContextNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "context_not_found",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
