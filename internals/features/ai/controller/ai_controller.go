// internals/features/ai/controller/ai_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aiModel "gso_backend/internals/features/ai/model"
	ipmtModel "gso_backend/internals/features/reports/ipmt/model"
	warModel "gso_backend/internals/features/reports/war/model"
	helper "gso_backend/internals/helpers"
	"gso_backend/internals/jobs"
)

type AIController struct {
	DB    *gorm.DB
	Queue *jobs.Queue
}

func NewAIController(db *gorm.DB, queue *jobs.Queue) *AIController {
	return &AIController{DB: db, Queue: queue}
}

/* ===================== HANDLERS ===================== */

// POST /admin/ai/wars/:id/summary
// Queues description generation for a WAR. Returns 202 immediately; the
// worker writes the result back onto the record.
func (h *AIController) GenerateWarDescription(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid WAR id")
	}

	var war warModel.WarModel
	if err := h.DB.Select("war_id").First(&war, "war_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "WAR not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load WAR")
	}

	h.Queue.Enqueue(jobs.TaskGenerateDescription, war.WarID)
	return helper.SuccessWithCode(c, fiber.StatusAccepted, "Description generation queued", fiber.Map{
		"war_id": war.WarID,
	})
}

// POST /admin/ai/ipmt/:id/summary
// Queues accomplishment summarization for an IPMT draft row.
func (h *AIController) GenerateIpmtSummary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid IPMT draft id")
	}

	var draft ipmtModel.IpmtDraftModel
	if err := h.DB.Select("ipmt_id").First(&draft, "ipmt_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "IPMT draft not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load IPMT draft")
	}

	h.Queue.Enqueue(jobs.TaskGenerateSummary, draft.IpmtID)
	return helper.SuccessWithCode(c, fiber.StatusAccepted, "Summary generation queued", fiber.Map{
		"ipmt_id": draft.IpmtID,
	})
}

// GET /admin/ai/summaries?kind=...
// Audit trail of model calls (token usage included when the provider returns it).
func (h *AIController) ListSummaries(c *fiber.Ctx) error {
	tx := h.DB.Order("ai_summary_created_at DESC").Limit(200)
	if kind := c.Query("kind"); kind != "" {
		tx = tx.Where("ai_summary_kind = ?", kind)
	}

	var rows []aiModel.AIReportSummaryModel
	if err := tx.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load summaries")
	}
	return c.JSON(fiber.Map{"data": rows})
}
