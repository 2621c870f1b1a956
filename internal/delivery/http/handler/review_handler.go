package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/pkg/utils"
	"github.com/emergency-locator/internal/pkg/validator"
	"github.com/emergency-locator/internal/usecase"
	"github.com/emergency-locator/internal/usecase/dto"
)

// ReviewHandler handles service review submission and listing.
type ReviewHandler struct {
	reviewUC *usecase.ReviewUseCase
	logger   *zap.Logger
}

func NewReviewHandler(reviewUC *usecase.ReviewUseCase, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// Create godoc
// @Summary Add a review
// @Description Appends a review with a 1-5 rating to an existing service
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body dto.AddReviewRequest true "Review to append"
// @Success 201 {object} utils.SuccessResponse{data=domain.Review}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	created, err := h.reviewUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, created)
}

// GetByService godoc
// @Summary List reviews of a service
// @Description Returns reviews for one service, newest first
// @Tags Reviews
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReviewsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/services/{id}/reviews [get]
func (h *ReviewHandler) GetByService(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.reviewUC.GetByServiceID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
