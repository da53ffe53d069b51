// internals/features/reports/activities/controller/activity_name_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "gso_backend/internals/features/reports/activities/dto"
	activityModel "gso_backend/internals/features/reports/activities/model"
	activityService "gso_backend/internals/features/reports/activities/service"
	helper "gso_backend/internals/helpers"
)

type ActivityNameController struct {
	DB *gorm.DB
}

func NewActivityNameController(db *gorm.DB) *ActivityNameController {
	return &ActivityNameController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /admin/reports/activities
func (h *ActivityNameController) Create(c *fiber.Ctx) error {
	var req activityDTO.CreateActivityNameRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Activity created", m)
}

// GET /admin/reports/activities
func (h *ActivityNameController) List(c *fiber.Ctx) error {
	var rows []activityModel.ActivityNameModel
	if err := h.DB.Order("activity_name_created_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activities")
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PATCH /admin/reports/activities/:id
func (h *ActivityNameController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid activity id")
	}

	var req activityDTO.UpdateActivityNameRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m activityModel.ActivityNameModel
	if err := h.DB.First(&m, "activity_name_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Activity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.Success(c, "Activity updated", m)
}

// DELETE /admin/reports/activities/:id (soft delete)
// The Miscellaneous fallback row is protected; classification cannot run
// without it.
func (h *ActivityNameController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid activity id")
	}

	var m activityModel.ActivityNameModel
	if err := h.DB.First(&m, "activity_name_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Activity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity")
	}
	if m.ActivityNameName == activityModel.FallbackActivityName {
		return fiber.NewError(fiber.StatusBadRequest, "The Miscellaneous fallback cannot be deleted")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.Success(c, "Activity deleted", fiber.Map{"activity_name_id": id})
}

// POST /admin/reports/activities/classify
// Dry-run endpoint: classify a description without touching any record.
func (h *ActivityNameController) Classify(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}

	classifier, err := activityService.NewClassifierFromDB(h.DB)
	if err != nil {
		if errors.Is(err, activityService.ErrFallbackNotConfigured) {
			return fiber.NewError(fiber.StatusInternalServerError, "Activity catalog is missing the Miscellaneous fallback")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity catalog")
	}

	activity := classifier.Classify(req.Description)
	return c.JSON(fiber.Map{"activity": activity})
}
