// internals/features/reports/war/controller/war_controller.go
package controller

import (
	"errors"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "gso_backend/internals/features/accounts/users/model"
	activityService "gso_backend/internals/features/reports/activities/service"
	warDTO "gso_backend/internals/features/reports/war/dto"
	warModel "gso_backend/internals/features/reports/war/model"
	warService "gso_backend/internals/features/reports/war/service"
	requestModel "gso_backend/internals/features/requests/service_requests/model"
	helper "gso_backend/internals/helpers"
	"gso_backend/internals/jobs"
)

type WarController struct {
	DB    *gorm.DB
	Queue *jobs.Queue
}

func NewWarController(db *gorm.DB, queue *jobs.Queue) *WarController {
	return &WarController{DB: db, Queue: queue}
}

/* ===================== HANDLERS ===================== */

// GET /admin/reports/accomplishments?q=...&unit=...
// One table over both sources: completed requests that have no WAR yet, plus
// every WAR. Blank descriptions get a generation job queued; the row still
// renders immediately.
func (h *WarController) AccomplishmentReport(c *fiber.Ctx) error {
	var completedRequests []requestModel.ServiceRequestModel
	if err := h.DB.
		Preload("RequestDepartment").
		Preload("RequestUnit").
		Preload("RequestPersonnel").
		Where("request_status = ?", requestModel.RequestStatusCompleted).
		Order("request_created_at DESC").
		Find(&completedRequests).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load completed requests")
	}

	var wars []warModel.WarModel
	if err := h.DB.
		Preload("WarRequest").
		Preload("WarRequest.RequestDepartment").
		Preload("WarRequest.RequestUnit").
		Preload("WarUnit").
		Preload("WarPersonnel").
		Order("war_date_started DESC").
		Find(&wars).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load WARs")
	}

	// requests that already turned into a WAR render once, as the WAR
	warRequestIDs := map[uuid.UUID]struct{}{}
	for i := range wars {
		if wars[i].WarRequestID != nil {
			warRequestIDs[*wars[i].WarRequestID] = struct{}{}
		}
	}

	reports := make([]warService.ReportRow, 0, len(completedRequests)+len(wars))
	for i := range completedRequests {
		if _, ok := warRequestIDs[completedRequests[i].RequestID]; ok {
			continue
		}
		reports = append(reports, warService.NormalizeRequest(&completedRequests[i]))
	}
	for i := range wars {
		row := warService.NormalizeWar(&wars[i])
		if strings.TrimSpace(row.Description) == "" {
			h.Queue.Enqueue(jobs.TaskGenerateDescription, wars[i].WarID)
		}
		reports = append(reports, row)
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := reports[:0]
		for _, r := range reports {
			if rowMatches(r, q) {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}
	if unit := strings.TrimSpace(c.Query("unit")); unit != "" {
		filtered := reports[:0]
		for _, r := range reports {
			if strings.EqualFold(r.Unit, unit) {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date.After(reports[j].Date)
	})

	personnel, err := h.activePersonnel()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load personnel")
	}

	return c.JSON(fiber.Map{
		"reports":        reports,
		"personnel_list": personnel,
	})
}

// GET /admin/reports/wars/:id/description
func (h *WarController) GetDescription(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid WAR id")
	}

	var war warModel.WarModel
	if err := h.DB.First(&war, "war_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "WAR not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load WAR")
	}
	return c.JSON(fiber.Map{"description": war.WarDescription})
}

// POST /admin/reports/wars
// Standalone WAR entry (migrated records, or work never filed as a request).
// The description is classified into an activity on the way in.
func (h *WarController) Create(c *fiber.Ctx) error {
	var req warDTO.CreateWarRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()

	classifier, err := activityService.NewClassifierFromDB(h.DB)
	if err != nil {
		if errors.Is(err, activityService.ErrFallbackNotConfigured) {
			return fiber.NewError(fiber.StatusInternalServerError, "Activity catalog is missing the Miscellaneous fallback")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load activity catalog")
	}
	if activity := classifier.Classify(m.WarDescription); activity != nil {
		id := activity.ActivityNameID
		m.WarActivityNameID = &id
	}

	if err := h.DB.Create(m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}

	if len(req.WarPersonnelIDs) > 0 {
		var users []userModel.UserModel
		if err := h.DB.Where("user_id IN ?", req.WarPersonnelIDs).Find(&users).Error; err == nil {
			_ = h.DB.Model(m).Association("WarPersonnel").Replace(users)
		}
	}

	if strings.TrimSpace(m.WarDescription) == "" {
		h.Queue.Enqueue(jobs.TaskGenerateDescription, m.WarID)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "WAR created", m)
}

// PATCH /admin/reports/wars/:id
func (h *WarController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid WAR id")
	}

	var req warDTO.UpdateWarRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m warModel.WarModel
	if err := h.DB.First(&m, "war_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "WAR not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load WAR")
	}

	req.ApplyToModel(&m)

	// reclassify when the description changed
	if req.WarDescription != nil {
		if classifier, cerr := activityService.NewClassifierFromDB(h.DB); cerr == nil {
			if activity := classifier.Classify(m.WarDescription); activity != nil {
				aid := activity.ActivityNameID
				m.WarActivityNameID = &aid
			}
		}
	}

	if err := h.DB.Save(&m).Error; err != nil {
		code, msg := helper.MapPGError(err)
		return fiber.NewError(code, msg)
	}
	return helper.Success(c, "WAR updated", m)
}

/* ===================== HELPERS ===================== */

func rowMatches(r warService.ReportRow, q string) bool {
	if strings.Contains(strings.ToLower(r.Description), q) ||
		strings.Contains(strings.ToLower(r.Unit), q) ||
		strings.Contains(strings.ToLower(r.RequestingOffice), q) ||
		strings.Contains(strings.ToLower(r.Status), q) {
		return true
	}
	for _, p := range r.Personnel {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
	}
	return false
}

func (h *WarController) activePersonnel() ([]fiber.Map, error) {
	var users []userModel.UserModel
	if err := h.DB.
		Preload("UserUnit").
		Joins("LEFT JOIN units ON units.unit_id = users.user_unit_id").
		Where("user_role = ? AND user_account_status = ?", "personnel", "active").
		Order("units.unit_name ASC, users.user_first_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	list := make([]fiber.Map, 0, len(users))
	for i := range users {
		u := &users[i]
		unit := "unassigned"
		if u.UserUnit != nil {
			unit = strings.ToLower(u.UserUnit.UnitName)
		}
		list = append(list, fiber.Map{
			"full_name": u.FullName(),
			"username":  u.UserUserName,
			"unit":      unit,
		})
	}
	return list, nil
}
