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

// ServiceHandler handles emergency service CRUD and radius search.
type ServiceHandler struct {
	serviceUC *usecase.ServiceUseCase
	logger    *zap.Logger
}

func NewServiceHandler(serviceUC *usecase.ServiceUseCase, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: serviceUC,
		logger:    logger,
	}
}

// GetAll godoc
// @Summary List all emergency services
// @Description Returns every registered emergency service with its coordinates
// @Tags Services
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.EmergencyService}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/services [get]
func (h *ServiceHandler) GetAll(c *fiber.Ctx) error {
	services, err := h.serviceUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, services, &utils.Meta{
		Total: len(services),
	})
}

// Create godoc
// @Summary Register an emergency service
// @Description Creates a new emergency service record at the given coordinates
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.AddServiceRequest true "Service to register"
// @Success 201 {object} utils.SuccessResponse{data=domain.EmergencyService}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req dto.AddServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	created, err := h.serviceUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, created)
}

// Delete godoc
// @Summary Delete an emergency service
// @Description Removes a service and its reviews
// @Tags Services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.serviceUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}

// SearchByRadius godoc
// @Summary Search services within a radius
// @Description Returns services of the requested types within the radius, closest first
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.RadiusSearchRequest true "Center point, radius in meters and optional type filter"
// @Success 200 {object} utils.SuccessResponse{data=dto.RadiusSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/services/radius [post]
func (h *ServiceHandler) SearchByRadius(c *fiber.Ctx) error {
	var req dto.RadiusSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.serviceUC.SearchWithinRadius(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
