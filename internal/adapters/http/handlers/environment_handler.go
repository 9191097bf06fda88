package handlers

import (
	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EnvironmentHandler handles indicator and environmental data endpoints
type EnvironmentHandler struct {
	repo *repositories.EnvironmentRepository
}

// NewEnvironmentHandler creates a new environment handler
func NewEnvironmentHandler(repo *repositories.EnvironmentRepository) *EnvironmentHandler {
	return &EnvironmentHandler{repo: repo}
}

// CreateIndicator handles indicator creation
func (h *EnvironmentHandler) CreateIndicator(c *fiber.Ctx) error {
	var indicator models.MonitoringIndicator
	if err := c.BodyParser(&indicator); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if indicator.IndicatorID == "" || indicator.IndicatorName == "" || indicator.Unit == "" {
		return response.BadRequest(c, "indicator_id, indicator_name and unit are required")
	}
	if indicator.ThresholdUpper != nil && indicator.ThresholdLower != nil &&
		*indicator.ThresholdLower > *indicator.ThresholdUpper {
		return response.BadRequest(c, "threshold_lower cannot exceed threshold_upper")
	}
	if err := h.repo.CreateIndicator(c.Context(), &indicator); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Indicator created successfully", indicator)
}

// GetIndicator handles indicator retrieval
func (h *EnvironmentHandler) GetIndicator(c *fiber.Ctx) error {
	indicator, err := h.repo.GetIndicator(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Indicator retrieved successfully", indicator)
}

// UpdateIndicator handles indicator updates
func (h *EnvironmentHandler) UpdateIndicator(c *fiber.Ctx) error {
	indicator, err := h.repo.GetIndicator(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(indicator); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	indicator.IndicatorID = c.Params("id")
	if err := h.repo.UpdateIndicator(c.Context(), indicator); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Indicator updated successfully", indicator)
}

// DeleteIndicator handles indicator deletion
func (h *EnvironmentHandler) DeleteIndicator(c *fiber.Ctx) error {
	if err := h.repo.DeleteIndicator(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Indicator deleted successfully", nil)
}

// ListIndicators handles indicator listing
func (h *EnvironmentHandler) ListIndicators(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	indicators, total, err := h.repo.ListIndicators(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Indicators retrieved successfully", pagination.NewResponse(indicators, params, total))
}

// CreateData handles environmental data creation
func (h *EnvironmentHandler) CreateData(c *fiber.Ctx) error {
	var data models.EnvironmentalData
	if err := c.BodyParser(&data); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if data.DataID == "" || data.IndicatorID == "" || data.DeviceID == "" || data.AreaID == "" {
		return response.BadRequest(c, "data_id, indicator_id, device_id and area_id are required")
	}
	switch data.DataQuality {
	case models.QualityExcellent, models.QualityGood, models.QualityFair, models.QualityPoor:
	default:
		return response.BadRequest(c, "data_quality must be excellent, good, fair or poor")
	}
	if err := h.repo.CreateData(c.Context(), &data); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Environmental data created successfully", data)
}

// GetData handles environmental data retrieval
func (h *EnvironmentHandler) GetData(c *fiber.Ctx) error {
	data, err := h.repo.GetData(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Environmental data retrieved successfully", data)
}

// ListData handles environmental data listing with filters
func (h *EnvironmentHandler) ListData(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	data, total, err := h.repo.ListData(c.Context(), repositories.EnvironmentalDataQuery{
		IndicatorID: c.Query("indicator_id"),
		AreaID:      c.Query("area_id"),
		Quality:     c.Query("quality"),
		From:        timeQuery(c, "from"),
		To:          timeQuery(c, "to"),
		Offset:      params.Offset,
		Limit:       params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Environmental data retrieved successfully", pagination.NewResponse(data, params, total))
}

// DataStatistics aggregates an indicator's samples
func (h *EnvironmentHandler) DataStatistics(c *fiber.Ctx) error {
	indicatorID := c.Query("indicator_id")
	if indicatorID == "" {
		return response.BadRequest(c, "indicator_id is required")
	}
	if _, err := h.repo.GetIndicator(c.Context(), indicatorID); err != nil {
		return respondError(c, err)
	}
	stats, err := h.repo.StatsByIndicator(c.Context(), indicatorID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Environmental statistics retrieved successfully", stats)
}
