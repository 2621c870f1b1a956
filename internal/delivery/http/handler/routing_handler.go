package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/pkg/errors"
	"github.com/emergency-locator/internal/pkg/utils"
	"github.com/emergency-locator/internal/usecase"
	"github.com/emergency-locator/internal/usecase/dto"
)

// RoutingHandler handles route requests. Responses are emitted as plain JSON
// without the success envelope: the route payload shape is a stable contract
// consumed directly by the map UI.
type RoutingHandler struct {
	routingUC *usecase.RoutingUseCase
	logger    *zap.Logger
}

func NewRoutingHandler(routingUC *usecase.RoutingUseCase, logger *zap.Logger) *RoutingHandler {
	return &RoutingHandler{
		routingUC: routingUC,
		logger:    logger,
	}
}

// RouteToService godoc
// @Summary Route to the nearest emergency service
// @Description Finds the closest service to the caller's position and returns turn-by-turn directions to it
// @Tags Routing
// @Produce json
// @Param longitude query number true "Caller longitude"
// @Param latitude query number true "Caller latitude"
// @Success 200 {object} dto.RouteToServiceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route-to-service [get]
func (h *RoutingHandler) RouteToService(c *fiber.Ctx) error {
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	resp, err := h.routingUC.RouteToNearestService(c.Context(), lon, lat)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}

// GetRoute godoc
// @Summary Route between two points
// @Description Returns turn-by-turn directions between two explicit coordinates
// @Tags Routing
// @Produce json
// @Param start_lon query number true "Origin longitude"
// @Param start_lat query number true "Origin latitude"
// @Param end_lon query number true "Destination longitude"
// @Param end_lat query number true "Destination latitude"
// @Success 200 {object} domain.Route
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/route [get]
func (h *RoutingHandler) GetRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	var err error

	if req.StartLon, err = strconv.ParseFloat(c.Query("start_lon"), 64); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if req.StartLat, err = strconv.ParseFloat(c.Query("start_lat"), 64); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if req.EndLon, err = strconv.ParseFloat(c.Query("end_lon"), 64); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	if req.EndLat, err = strconv.ParseFloat(c.Query("end_lat"), 64); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	route, err := h.routingUC.GetRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(route)
}
