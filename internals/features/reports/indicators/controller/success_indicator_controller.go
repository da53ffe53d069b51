// internals/features/reports/indicators/controller/success_indicator_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	indicatorDTO "gso_backend/internals/features/reports/indicators/dto"
	indicatorModel "gso_backend/internals/features/reports/indicators/model"
	helper "gso_backend/internals/helpers"
)

type SuccessIndicatorController struct {
	DB *gorm.DB
}

func NewSuccessIndicatorController(db *gorm.DB) *SuccessIndicatorController {
	return &SuccessIndicatorController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /admin/reports/indicators
func (h *SuccessIndicatorController) Create(c *fiber.Ctx) error {
	var req indicatorDTO.CreateIndicatorRequest
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
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Indicator created", m)
}

// GET /admin/reports/indicators?unit=...
// Ordered by creation time, which is the order they appear on the IPMT form.
func (h *SuccessIndicatorController) List(c *fiber.Ctx) error {
	tx := h.DB.
		Preload("IndicatorUnit").
		Preload("IndicatorActivityName").
		Order("indicator_created_at ASC")

	if unit := strings.TrimSpace(c.Query("unit")); unit != "" {
		tx = tx.
			Joins("JOIN units ON units.unit_id = success_indicators.indicator_unit_id").
			Where("LOWER(units.unit_name) = LOWER(?)", unit)
	}

	var rows []indicatorModel.SuccessIndicatorModel
	if err := tx.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load indicators")
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PATCH /admin/reports/indicators/:id
func (h *SuccessIndicatorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid indicator id")
	}

	var req indicatorDTO.UpdateIndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m indicatorModel.SuccessIndicatorModel
	if err := h.DB.First(&m, "indicator_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Indicator not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load indicator")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.Success(c, "Indicator updated", m)
}

// DELETE /admin/reports/indicators/:id (soft delete)
func (h *SuccessIndicatorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid indicator id")
	}

	res := h.DB.Delete(&indicatorModel.SuccessIndicatorModel{}, "indicator_id = ?", id)
	if res.Error != nil {
		code, msg := helper.MapPGError(res.Error)
		return fiber.NewError(code, msg)
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Indicator not found")
	}
	return helper.Success(c, "Indicator deleted", fiber.Map{"indicator_id": id})
}
