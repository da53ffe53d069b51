// internals/features/accounts/units/controller/unit_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
	helper "gso_backend/internals/helpers"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

/* ===================== DTO ===================== */

type CreateUnitRequest struct {
	UnitName        string  `json:"unit_name" validate:"required,min=2,max=150"`
	UnitDescription *string `json:"unit_description" validate:"omitempty"`
}

type UpdateUnitRequest struct {
	UnitName        *string `json:"unit_name" validate:"omitempty,min=2,max=150"`
	UnitDescription *string `json:"unit_description" validate:"omitempty"`
	UnitIsActive    *bool   `json:"unit_is_active" validate:"omitempty"`
}

/* ===================== HANDLERS ===================== */

// POST /admin/accounts/units
func (h *UnitController) Create(c *fiber.Ctx) error {
	var req CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &unitModel.UnitModel{
		UnitName:        strings.TrimSpace(req.UnitName),
		UnitDescription: req.UnitDescription,
		UnitIsActive:    true,
	}
	if err := h.DB.Create(m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Unit created", m)
}

// GET /admin/accounts/units
func (h *UnitController) List(c *fiber.Ctx) error {
	var rows []unitModel.UnitModel
	if err := h.DB.Order("unit_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load units")
	}
	return c.JSON(fiber.Map{"data": rows})
}

// PATCH /admin/accounts/units/:id
func (h *UnitController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid unit id")
	}

	var req UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m unitModel.UnitModel
	if err := h.DB.First(&m, "unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Unit not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load unit")
	}

	if req.UnitName != nil {
		m.UnitName = strings.TrimSpace(*req.UnitName)
	}
	if req.UnitDescription != nil {
		m.UnitDescription = req.UnitDescription
	}
	if req.UnitIsActive != nil {
		m.UnitIsActive = *req.UnitIsActive
	}
	now := time.Now()
	m.UnitUpdatedAt = &now

	if err := h.DB.Save(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.Success(c, "Unit updated", m)
}
