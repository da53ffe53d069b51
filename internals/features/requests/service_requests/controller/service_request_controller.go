// internals/features/requests/service_requests/controller/service_request_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "gso_backend/internals/features/accounts/users/model"
	activityService "gso_backend/internals/features/reports/activities/service"
	warModel "gso_backend/internals/features/reports/war/model"
	requestDTO "gso_backend/internals/features/requests/service_requests/dto"
	requestModel "gso_backend/internals/features/requests/service_requests/model"
	helper "gso_backend/internals/helpers"
	"gso_backend/internals/jobs"
)

type ServiceRequestController struct {
	DB    *gorm.DB
	Queue *jobs.Queue
}

func NewServiceRequestController(db *gorm.DB, queue *jobs.Queue) *ServiceRequestController {
	return &ServiceRequestController{DB: db, Queue: queue}
}

/* ===================== HANDLERS ===================== */

// POST /admin/requests
func (h *ServiceRequestController) Create(c *fiber.Ctx) error {
	var req requestDTO.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}

	if len(req.RequestPersonnelIDs) > 0 {
		h.assignPersonnel(m, req.RequestPersonnelIDs)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Service request created", m)
}

// GET /admin/requests?status=...&unit=...
func (h *ServiceRequestController) List(c *fiber.Ctx) error {
	tx := h.DB.
		Preload("RequestDepartment").
		Preload("RequestUnit").
		Preload("RequestPersonnel").
		Order("request_created_at DESC")

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("request_status = ?", status)
	}
	if unit := strings.TrimSpace(c.Query("unit")); unit != "" {
		tx = tx.
			Joins("JOIN units ON units.unit_id = service_requests.request_unit_id").
			Where("LOWER(units.unit_name) = LOWER(?)", unit)
	}

	var rows []requestModel.ServiceRequestModel
	if err := tx.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load requests")
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PATCH /admin/requests/:id
func (h *ServiceRequestController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	var req requestDTO.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m requestModel.ServiceRequestModel
	if err := h.DB.First(&m, "request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service request not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load request")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}

	if req.RequestPersonnelIDs != nil {
		h.assignPersonnel(&m, req.RequestPersonnelIDs)
	}

	return helper.Success(c, "Service request updated", m)
}

// POST /admin/requests/:id/complete
// Marks the request completed and files the matching WAR in one transaction.
// The WAR inherits the request's description, unit, and crew; the description
// is classified into an activity on the way in. Idempotent: a request that
// already has its WAR just gets its status set.
func (h *ServiceRequestController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	var req requestModel.ServiceRequestModel
	if err := h.DB.Preload("RequestPersonnel").First(&req, "request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service request not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load request")
	}
	if req.RequestUnitID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Request has no assigned unit; assign one before completing")
	}

	classifier, err := activityService.NewClassifierFromDB(h.DB)
	if err != nil {
		if errors.Is(err, activityService.ErrFallbackNotConfigured) {
			return fiber.NewError(fiber.StatusInternalServerError, "Activity catalog is missing the Miscellaneous fallback")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity catalog")
	}

	var war warModel.WarModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		req.RequestStatus = requestModel.RequestStatusCompleted
		req.RequestUpdatedAt = &now
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		// already converted earlier
		if err := tx.First(&war, "war_request_id = ?", req.RequestID).Error; err == nil {
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		war = warModel.WarModel{
			WarRequestID:   &req.RequestID,
			WarUnitID:      *req.RequestUnitID,
			WarDescription: req.RequestDescription,
			WarDateStarted: req.RequestCreatedAt,
			WarDateCompleted: func() *time.Time {
				t := now
				return &t
			}(),
			WarStatus: warModel.WarStatusCompleted,
		}
		if activity := classifier.Classify(war.WarDescription); activity != nil {
			aid := activity.ActivityNameID
			war.WarActivityNameID = &aid
		}
		if err := tx.Create(&war).Error; err != nil {
			return err
		}
		if len(req.RequestPersonnel) > 0 {
			if err := tx.Model(&war).Association("WarPersonnel").Replace(req.RequestPersonnel); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		code, msg := helper.MapPGError(txErr)
		return fiber.NewError(code, msg)
	}

	if strings.TrimSpace(war.WarDescription) == "" {
		h.Queue.Enqueue(jobs.TaskGenerateDescription, war.WarID)
	}

	return helper.Success(c, "Request completed", fiber.Map{
		"request": req,
		"war":     war,
	})
}

/* ===================== HELPERS ===================== */

func (h *ServiceRequestController) assignPersonnel(m *requestModel.ServiceRequestModel, ids []uuid.UUID) {
	var users []userModel.UserModel
	if err := h.DB.Where("user_id IN ?", ids).Find(&users).Error; err == nil {
		_ = h.DB.Model(m).Association("RequestPersonnel").Replace(users)
	}
}
