package handlers

import (
	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"
	"natpark-backend/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// VisitorHandler handles visitor, reservation, trajectory and traffic
// endpoints
type VisitorHandler struct {
	repo               *repositories.VisitorRepository
	reservationService *services.ReservationService
	visitorService     *services.VisitorService
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(
	repo *repositories.VisitorRepository,
	reservationService *services.ReservationService,
	visitorService *services.VisitorService,
) *VisitorHandler {
	return &VisitorHandler{
		repo:               repo,
		reservationService: reservationService,
		visitorService:     visitorService,
	}
}

// CreateVisitor handles visitor registration
func (h *VisitorHandler) CreateVisitor(c *fiber.Ctx) error {
	var visitor models.Visitor
	if err := c.BodyParser(&visitor); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if visitor.VisitorID == "" || visitor.VisitorName == "" {
		return response.BadRequest(c, "visitor_id and visitor_name are required")
	}
	if err := validate.IDCardNumber(visitor.IDCardNumber); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if visitor.ContactPhone != "" {
		if err := validate.PhoneNumber(visitor.ContactPhone); err != nil {
			return response.BadRequest(c, err.Error())
		}
	}
	switch visitor.EntryMethod {
	case models.EntryOnlineReservation, models.EntryOnSitePurchase:
	default:
		return response.BadRequest(c, "entry_method must be online-reservation or onsite-purchase")
	}
	if err := h.repo.CreateVisitor(c.Context(), &visitor); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Visitor created successfully", visitor)
}

// GetVisitor handles visitor retrieval
func (h *VisitorHandler) GetVisitor(c *fiber.Ctx) error {
	visitor, err := h.repo.GetVisitor(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Visitor retrieved successfully", visitor)
}

// ListVisitors handles visitor listing
func (h *VisitorHandler) ListVisitors(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	insideOnly := c.Query("inside") == "true"
	visitors, total, err := h.repo.ListVisitors(c.Context(), insideOnly, params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Visitors retrieved successfully", pagination.NewResponse(visitors, params, total))
}

// EntryRequest represents park entry and exit request body
type EntryRequest struct {
	AreaID string `json:"area_id"`
}

// RegisterEntry stamps a visitor's park entry
func (h *VisitorHandler) RegisterEntry(c *fiber.Ctx) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.AreaID == "" {
		return response.BadRequest(c, "area_id is required")
	}
	visitor, err := h.visitorService.RegisterEntry(c.Context(), c.Params("id"), req.AreaID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Entry registered successfully", visitor)
}

// RegisterExit stamps a visitor's park exit
func (h *VisitorHandler) RegisterExit(c *fiber.Ctx) error {
	var req EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.AreaID == "" {
		return response.BadRequest(c, "area_id is required")
	}
	visitor, err := h.visitorService.RegisterExit(c.Context(), c.Params("id"), req.AreaID)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Exit registered successfully", visitor)
}

// CreateReservation books a visit
func (h *VisitorHandler) CreateReservation(c *fiber.Ctx) error {
	var input services.CreateReservationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.VisitorID == "" || input.ReservationDate == "" {
		return response.BadRequest(c, "visitor_id and reservation_date are required")
	}
	reservation, err := h.reservationService.CreateReservation(c.Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Reservation created successfully", reservation)
}

// GetReservation handles reservation retrieval
func (h *VisitorHandler) GetReservation(c *fiber.Ctx) error {
	reservation, err := h.repo.GetReservation(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Reservation retrieved successfully", reservation)
}

// ListReservations handles reservation listing with filters
func (h *VisitorHandler) ListReservations(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	reservations, total, err := h.repo.ListReservations(c.Context(), repositories.ReservationQuery{
		VisitorID: c.Query("visitor_id"),
		Status:    c.Query("status"),
		Date:      timeQuery(c, "date"),
		Offset:    params.Offset,
		Limit:     params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Reservations retrieved successfully", pagination.NewResponse(reservations, params, total))
}

// CancelReservation cancels a reservation
func (h *VisitorHandler) CancelReservation(c *fiber.Ctx) error {
	reservation, err := h.reservationService.CancelReservation(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Reservation cancelled successfully", reservation)
}

// CompleteReservation marks a reservation as completed
func (h *VisitorHandler) CompleteReservation(c *fiber.Ctx) error {
	reservation, err := h.reservationService.CompleteReservation(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Reservation completed successfully", reservation)
}

// CreateTrajectory records a visitor position sample
func (h *VisitorHandler) CreateTrajectory(c *fiber.Ctx) error {
	var trajectory models.VisitorTrajectory
	if err := c.BodyParser(&trajectory); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if trajectory.TrajectoryID == "" || trajectory.VisitorID == "" || trajectory.AreaID == "" {
		return response.BadRequest(c, "trajectory_id, visitor_id and area_id are required")
	}
	if err := validate.Latitude(trajectory.LocationLatitude); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validate.Longitude(trajectory.LocationLongitude); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.repo.CreateTrajectory(c.Context(), &trajectory); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Trajectory recorded successfully", trajectory)
}

// ListVisitorTrajectories lists a visitor's movement trail
func (h *VisitorHandler) ListVisitorTrajectories(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	points, total, err := h.repo.ListTrajectoriesByVisitor(c.Context(), c.Params("id"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Trajectories retrieved successfully", pagination.NewResponse(points, params, total))
}

// UpsertTrafficControl creates or replaces an area's traffic control row
func (h *VisitorHandler) UpsertTrafficControl(c *fiber.Ctx) error {
	var control models.TrafficControl
	if err := c.BodyParser(&control); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	control.AreaID = c.Params("id")
	if control.DailyCapacity <= 0 {
		return response.BadRequest(c, "daily_capacity must be greater than 0")
	}
	if control.WarningThreshold <= 0 || control.WarningThreshold > control.DailyCapacity {
		return response.BadRequest(c, "warning_threshold must be between 1 and daily_capacity")
	}
	if control.CurrentVisitorCount < 0 {
		return response.BadRequest(c, "current_visitor_count cannot be negative")
	}
	control.CurrentStatus = control.DerivedStatus()
	if err := h.repo.SaveTrafficControl(c.Context(), &control); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Traffic control saved successfully", control)
}

// GetAreaTraffic returns an area's current traffic state
func (h *VisitorHandler) GetAreaTraffic(c *fiber.Ctx) error {
	entry, err := h.visitorService.AreaTraffic(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Traffic status retrieved successfully", entry)
}

// TrafficOverview returns every area's current traffic state
func (h *VisitorHandler) TrafficOverview(c *fiber.Ctx) error {
	entries, err := h.visitorService.TrafficOverview(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Traffic overview retrieved successfully", entries)
}
