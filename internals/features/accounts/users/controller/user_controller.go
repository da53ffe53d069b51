// internals/features/accounts/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "gso_backend/internals/features/accounts/users/model"
	"gso_backend/internals/constants"
	helper "gso_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /admin/accounts/users?role=...&unit=...&status=...
func (h *UserController) List(c *fiber.Ctx) error {
	tx := h.DB.
		Preload("UserUnit").
		Order("user_first_name ASC, user_last_name ASC")

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("user_role = ?", strings.ToLower(role))
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("user_account_status = ?", strings.ToLower(status))
	}
	if unit := strings.TrimSpace(c.Query("unit")); unit != "" {
		tx = tx.
			Joins("JOIN units ON units.unit_id = users.user_unit_id").
			Where("LOWER(units.unit_name) = LOWER(?)", unit)
	}

	var users []userModel.UserModel
	if err := tx.Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load users")
	}
	return c.JSON(fiber.Map{"data": users})
}

// GET /admin/accounts/users/personnel
// Active personnel grouped the way the report filter dropdowns consume them.
func (h *UserController) Personnel(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := h.DB.
		Preload("UserUnit").
		Where("user_role = ? AND user_account_status = ?", constants.RolePersonnel, constants.AccountActive).
		Order("user_first_name ASC").
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load personnel")
	}

	list := make([]fiber.Map, 0, len(users))
	for i := range users {
		u := &users[i]
		unit := "unassigned"
		if u.UserUnit != nil {
			unit = strings.ToLower(u.UserUnit.UnitName)
		}
		list = append(list, fiber.Map{
			"user_id":   u.UserID,
			"full_name": u.FullName(),
			"username":  u.UserUserName,
			"unit":      unit,
		})
	}
	return c.JSON(fiber.Map{"data": list})
}

// PATCH /admin/accounts/users/:id/unit
// Reassign a user to a unit (or clear the assignment with null).
func (h *UserController) AssignUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	var req struct {
		UserUnitID *uuid.UUID `json:"user_unit_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}

	var m userModel.UserModel
	if err := h.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	m.UserUnitID = req.UserUnitID
	if err := h.DB.Save(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.Success(c, "User unit updated", m)
}
