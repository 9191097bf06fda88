package handlers

import (
	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"
	"natpark-backend/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// BiodiversityHandler handles species, habitat, device and monitoring
// record endpoints
type BiodiversityHandler struct {
	repo *repositories.BiodiversityRepository
}

// NewBiodiversityHandler creates a new biodiversity handler
func NewBiodiversityHandler(repo *repositories.BiodiversityRepository) *BiodiversityHandler {
	return &BiodiversityHandler{repo: repo}
}

// CreateSpecies handles species creation
func (h *BiodiversityHandler) CreateSpecies(c *fiber.Ctx) error {
	var species models.Species
	if err := c.BodyParser(&species); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if species.SpeciesID == "" || species.CommonName == "" || species.LatinName == "" {
		return response.BadRequest(c, "species_id, common_name and latin_name are required")
	}
	if err := h.repo.CreateSpecies(c.Context(), &species); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Species created successfully", species)
}

// GetSpecies handles species retrieval
func (h *BiodiversityHandler) GetSpecies(c *fiber.Ctx) error {
	species, err := h.repo.GetSpecies(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Species retrieved successfully", species)
}

// UpdateSpecies handles species updates
func (h *BiodiversityHandler) UpdateSpecies(c *fiber.Ctx) error {
	species, err := h.repo.GetSpecies(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(species); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	species.SpeciesID = c.Params("id")
	if err := h.repo.UpdateSpecies(c.Context(), species); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Species updated successfully", species)
}

// DeleteSpecies handles species deletion
func (h *BiodiversityHandler) DeleteSpecies(c *fiber.Ctx) error {
	if err := h.repo.DeleteSpecies(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Species deleted successfully", nil)
}

// ListSpecies handles species listing with filters
func (h *BiodiversityHandler) ListSpecies(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	species, total, err := h.repo.ListSpecies(c.Context(), repositories.SpeciesQuery{
		ProtectionLevel: c.Query("protection_level"),
		Kingdom:         c.Query("kingdom"),
		Search:          c.Query("search"),
		Offset:          params.Offset,
		Limit:           params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Species retrieved successfully", pagination.NewResponse(species, params, total))
}

// ListProtectedSpecies lists nationally protected species only
func (h *BiodiversityHandler) ListProtectedSpecies(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	level := c.Query("protection_level", string(models.ProtectionNational1))
	if level == string(models.ProtectionNone) {
		return response.BadRequest(c, "protection_level must name a protected class")
	}
	species, total, err := h.repo.ListSpecies(c.Context(), repositories.SpeciesQuery{
		ProtectionLevel: level,
		Offset:          params.Offset,
		Limit:           params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Protected species retrieved successfully", pagination.NewResponse(species, params, total))
}

// SpeciesStatistics groups species counts by protection level
func (h *BiodiversityHandler) SpeciesStatistics(c *fiber.Ctx) error {
	counts, err := h.repo.CountSpeciesByProtectionLevel(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Species statistics retrieved successfully", counts)
}

// CreateHabitat handles habitat creation
func (h *BiodiversityHandler) CreateHabitat(c *fiber.Ctx) error {
	var habitat models.Habitat
	if err := c.BodyParser(&habitat); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if habitat.HabitatID == "" || habitat.AreaName == "" {
		return response.BadRequest(c, "habitat_id and area_name are required")
	}
	if err := h.repo.CreateHabitat(c.Context(), &habitat); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Habitat created successfully", habitat)
}

// GetHabitat handles habitat retrieval
func (h *BiodiversityHandler) GetHabitat(c *fiber.Ctx) error {
	habitat, err := h.repo.GetHabitat(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Habitat retrieved successfully", habitat)
}

// UpdateHabitat handles habitat updates
func (h *BiodiversityHandler) UpdateHabitat(c *fiber.Ctx) error {
	habitat, err := h.repo.GetHabitat(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(habitat); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	habitat.HabitatID = c.Params("id")
	if err := h.repo.UpdateHabitat(c.Context(), habitat); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Habitat updated successfully", habitat)
}

// DeleteHabitat handles habitat deletion
func (h *BiodiversityHandler) DeleteHabitat(c *fiber.Ctx) error {
	if err := h.repo.DeleteHabitat(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Habitat deleted successfully", nil)
}

// ListHabitats handles habitat listing
func (h *BiodiversityHandler) ListHabitats(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	habitats, total, err := h.repo.ListHabitats(c.Context(), c.Query("ecology_type"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Habitats retrieved successfully", pagination.NewResponse(habitats, params, total))
}

// LinkSpeciesRequest represents a habitat-species link request body
type LinkSpeciesRequest struct {
	SpeciesID      string `json:"species_id"`
	IsMajorSpecies bool   `json:"is_major_species"`
}

// LinkSpecies attaches a species to a habitat
func (h *BiodiversityHandler) LinkSpecies(c *fiber.Ctx) error {
	var req LinkSpeciesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.SpeciesID == "" {
		return response.BadRequest(c, "species_id is required")
	}
	if _, err := h.repo.GetHabitat(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	if _, err := h.repo.GetSpecies(c.Context(), req.SpeciesID); err != nil {
		return respondError(c, err)
	}
	link := &models.HabitatSpecies{
		HabitatID:      c.Params("id"),
		SpeciesID:      req.SpeciesID,
		IsMajorSpecies: req.IsMajorSpecies,
	}
	if err := h.repo.LinkHabitatSpecies(c.Context(), link); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Species linked successfully", link)
}

// ListHabitatSpecies lists the species linked to a habitat
func (h *BiodiversityHandler) ListHabitatSpecies(c *fiber.Ctx) error {
	links, err := h.repo.ListHabitatSpecies(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Habitat species retrieved successfully", links)
}

// CreateDevice handles monitoring device creation
func (h *BiodiversityHandler) CreateDevice(c *fiber.Ctx) error {
	var device models.MonitoringDevice
	if err := c.BodyParser(&device); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if device.DeviceID == "" || device.DeviceType == "" || device.DeploymentAreaID == "" {
		return response.BadRequest(c, "device_id, device_type and deployment_area_id are required")
	}
	if !device.OperationStatus.Valid() {
		return response.BadRequest(c, "operation_status must be normal, fault or offline")
	}
	if err := h.repo.CreateDevice(c.Context(), &device); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Device created successfully", device)
}

// GetDevice handles monitoring device retrieval
func (h *BiodiversityHandler) GetDevice(c *fiber.Ctx) error {
	device, err := h.repo.GetDevice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Device retrieved successfully", device)
}

// UpdateDeviceStatusRequest represents device status update request body
type UpdateDeviceStatusRequest struct {
	OperationStatus models.DeviceStatus `json:"operation_status"`
}

// UpdateDeviceStatus changes a device's operational status
func (h *BiodiversityHandler) UpdateDeviceStatus(c *fiber.Ctx) error {
	var req UpdateDeviceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if !req.OperationStatus.Valid() {
		return response.BadRequest(c, "operation_status must be normal, fault or offline")
	}
	device, err := h.repo.GetDevice(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	device.OperationStatus = req.OperationStatus
	if err := h.repo.UpdateDevice(c.Context(), device); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Device status updated successfully", device)
}

// DeleteDevice handles monitoring device deletion
func (h *BiodiversityHandler) DeleteDevice(c *fiber.Ctx) error {
	if err := h.repo.DeleteDevice(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Device deleted successfully", nil)
}

// ListDevices handles monitoring device listing
func (h *BiodiversityHandler) ListDevices(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	devices, total, err := h.repo.ListDevices(c.Context(), c.Query("area_id"), c.Query("status"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Devices retrieved successfully", pagination.NewResponse(devices, params, total))
}

// CreateMonitoringRecord handles monitoring record creation
func (h *BiodiversityHandler) CreateMonitoringRecord(c *fiber.Ctx) error {
	var record models.MonitoringRecord
	if err := c.BodyParser(&record); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if record.RecordID == "" || record.SpeciesID == "" || record.DeviceID == "" {
		return response.BadRequest(c, "record_id, species_id and device_id are required")
	}
	if err := validate.Latitude(record.LocationLatitude); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := validate.Longitude(record.LocationLongitude); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if userID, ok := currentUserID(c); ok && record.RecorderID == "" {
		record.RecorderID = userID
	}
	if record.DataStatus == "" {
		record.DataStatus = models.RecordPending
	}
	if err := h.repo.CreateMonitoringRecord(c.Context(), &record); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Monitoring record created successfully", record)
}

// GetMonitoringRecord handles monitoring record retrieval
func (h *BiodiversityHandler) GetMonitoringRecord(c *fiber.Ctx) error {
	record, err := h.repo.GetMonitoringRecord(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Monitoring record retrieved successfully", record)
}

// VerifyMonitoringRecord marks a pending record as valid
func (h *BiodiversityHandler) VerifyMonitoringRecord(c *fiber.Ctx) error {
	record, err := h.repo.GetMonitoringRecord(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	record.DataStatus = models.RecordValid
	if err := h.repo.UpdateMonitoringRecord(c.Context(), record); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Monitoring record verified successfully", record)
}

// ListMonitoringRecords handles monitoring record listing with filters
func (h *BiodiversityHandler) ListMonitoringRecords(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	records, total, err := h.repo.ListMonitoringRecords(c.Context(), repositories.MonitoringRecordQuery{
		SpeciesID: c.Query("species_id"),
		DeviceID:  c.Query("device_id"),
		Status:    c.Query("status"),
		From:      timeQuery(c, "from"),
		To:        timeQuery(c, "to"),
		Offset:    params.Offset,
		Limit:     params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Monitoring records retrieved successfully", pagination.NewResponse(records, params, total))
}
