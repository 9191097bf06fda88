package handlers

import (
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"
	"natpark-backend/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// EnforcementHandler handles enforcer, surveillance, case and dispatch
// endpoints
type EnforcementHandler struct {
	repo    *repositories.EnforcementRepository
	service *services.EnforcementService
}

// NewEnforcementHandler creates a new enforcement handler
func NewEnforcementHandler(repo *repositories.EnforcementRepository, service *services.EnforcementService) *EnforcementHandler {
	return &EnforcementHandler{repo: repo, service: service}
}

// CreateEnforcer handles enforcer creation
func (h *EnforcementHandler) CreateEnforcer(c *fiber.Ctx) error {
	var enforcer models.LawEnforcer
	if err := c.BodyParser(&enforcer); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if enforcer.EnforcerID == "" || enforcer.EnforcerName == "" || enforcer.Department == "" {
		return response.BadRequest(c, "enforcer_id, enforcer_name and department are required")
	}
	if enforcer.ContactPhone != "" {
		if err := validate.PhoneNumber(enforcer.ContactPhone); err != nil {
			return response.BadRequest(c, err.Error())
		}
	}
	if err := h.repo.CreateEnforcer(c.Context(), &enforcer); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Enforcer created successfully", enforcer)
}

// GetEnforcer handles enforcer retrieval
func (h *EnforcementHandler) GetEnforcer(c *fiber.Ctx) error {
	enforcer, err := h.repo.GetEnforcer(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Enforcer retrieved successfully", enforcer)
}

// UpdateEnforcer handles enforcer updates
func (h *EnforcementHandler) UpdateEnforcer(c *fiber.Ctx) error {
	enforcer, err := h.repo.GetEnforcer(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(enforcer); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	enforcer.EnforcerID = c.Params("id")
	if err := h.repo.UpdateEnforcer(c.Context(), enforcer); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Enforcer updated successfully", enforcer)
}

// DeleteEnforcer handles enforcer deletion
func (h *EnforcementHandler) DeleteEnforcer(c *fiber.Ctx) error {
	if err := h.repo.DeleteEnforcer(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Enforcer deleted successfully", nil)
}

// ListEnforcers handles enforcer listing
func (h *EnforcementHandler) ListEnforcers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	enforcers, total, err := h.repo.ListEnforcers(c.Context(), c.Query("department"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Enforcers retrieved successfully", pagination.NewResponse(enforcers, params, total))
}

// CreateSurveillancePoint handles surveillance point creation
func (h *EnforcementHandler) CreateSurveillancePoint(c *fiber.Ctx) error {
	var point models.SurveillancePoint
	if err := c.BodyParser(&point); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if point.MonitorID == "" || point.AreaID == "" {
		return response.BadRequest(c, "monitor_id and area_id are required")
	}
	if err := validate.Latitude(point.LocationLatitude); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validate.Longitude(point.LocationLongitude); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if point.DeviceStatus == "" {
		point.DeviceStatus = models.SurveillanceNormal
	}
	if err := h.repo.CreateSurveillancePoint(c.Context(), &point); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Surveillance point created successfully", point)
}

// GetSurveillancePoint handles surveillance point retrieval
func (h *EnforcementHandler) GetSurveillancePoint(c *fiber.Ctx) error {
	point, err := h.repo.GetSurveillancePoint(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Surveillance point retrieved successfully", point)
}

// UpdateSurveillancePoint handles surveillance point updates
func (h *EnforcementHandler) UpdateSurveillancePoint(c *fiber.Ctx) error {
	point, err := h.repo.GetSurveillancePoint(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(point); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	point.MonitorID = c.Params("id")
	if err := h.repo.UpdateSurveillancePoint(c.Context(), point); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Surveillance point updated successfully", point)
}

// DeleteSurveillancePoint handles surveillance point deletion
func (h *EnforcementHandler) DeleteSurveillancePoint(c *fiber.Ctx) error {
	if err := h.repo.DeleteSurveillancePoint(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Surveillance point deleted successfully", nil)
}

// ListSurveillancePoints handles surveillance point listing
func (h *EnforcementHandler) ListSurveillancePoints(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	points, total, err := h.repo.ListSurveillancePoints(c.Context(), c.Query("area_id"), c.Query("status"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Surveillance points retrieved successfully", pagination.NewResponse(points, params, total))
}

// CreateCase records an illegal behavior sighting
func (h *EnforcementHandler) CreateCase(c *fiber.Ctx) error {
	var record models.IllegalBehavior
	if err := c.BodyParser(&record); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if record.RecordID == "" || record.BehaviorType == "" || record.AreaID == "" || record.EvidencePath == "" {
		return response.BadRequest(c, "record_id, behavior_type, area_id and evidence_path are required")
	}
	if record.OccurrenceTime.IsZero() {
		record.OccurrenceTime = time.Now()
	}
	record.HandlingStatus = models.CaseUnhandled
	record.EnforcerID = nil
	record.HandlingResult = ""
	record.PenaltyBasis = ""
	if err := h.repo.CreateCase(c.Context(), &record); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Case created successfully", record)
}

// GetCase handles case retrieval
func (h *EnforcementHandler) GetCase(c *fiber.Ctx) error {
	record, err := h.repo.GetCase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Case retrieved successfully", record)
}

// ListCases handles case listing with filters
func (h *EnforcementHandler) ListCases(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	records, total, err := h.repo.ListCases(c.Context(), repositories.CaseQuery{
		Status:   c.Query("status"),
		AreaID:   c.Query("area_id"),
		Behavior: c.Query("behavior_type"),
		From:     timeQuery(c, "from"),
		To:       timeQuery(c, "to"),
		Offset:   params.Offset,
		Limit:    params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Cases retrieved successfully", pagination.NewResponse(records, params, total))
}

// HandleCase closes a case with its outcome
func (h *EnforcementHandler) HandleCase(c *fiber.Ctx) error {
	var input services.HandleCaseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.EnforcerID == "" || input.HandlingResult == "" {
		return response.BadRequest(c, "enforcer_id and handling_result are required")
	}
	record, err := h.service.HandleCase(c.Context(), c.Params("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Case handled successfully", record)
}

// CreateDispatch opens a dispatch against a case
func (h *EnforcementHandler) CreateDispatch(c *fiber.Ctx) error {
	var input services.CreateDispatchInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.RecordID == "" || input.EnforcerID == "" {
		return response.BadRequest(c, "record_id and enforcer_id are required")
	}
	dispatch, err := h.service.CreateDispatch(c.Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Dispatch created successfully", dispatch)
}

// GetDispatch handles dispatch retrieval
func (h *EnforcementHandler) GetDispatch(c *fiber.Ctx) error {
	dispatch, err := h.repo.GetDispatch(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Dispatch retrieved successfully", dispatch)
}

// ListDispatches handles dispatch listing with filters
func (h *EnforcementHandler) ListDispatches(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	dispatches, total, err := h.repo.ListDispatches(c.Context(), repositories.DispatchQuery{
		Status:     c.Query("status"),
		EnforcerID: c.Query("enforcer_id"),
		RecordID:   c.Query("record_id"),
		Offset:     params.Offset,
		Limit:      params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Dispatches retrieved successfully", pagination.NewResponse(dispatches, params, total))
}

// TransitionRequest carries an optional timestamp for a dispatch transition
type TransitionRequest struct {
	At *time.Time `json:"at"`
}

// RespondDispatch marks a dispatch as assigned
func (h *EnforcementHandler) RespondDispatch(c *fiber.Ctx) error {
	var req TransitionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	dispatch, err := h.service.RespondDispatch(c.Context(), c.Params("id"), req.At)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Dispatch responded successfully", dispatch)
}

// CompleteDispatch marks a dispatch as completed
func (h *EnforcementHandler) CompleteDispatch(c *fiber.Ctx) error {
	var req TransitionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}
	dispatch, err := h.service.CompleteDispatch(c.Context(), c.Params("id"), req.At)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Dispatch completed successfully", dispatch)
}
