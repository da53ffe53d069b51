// internals/features/reports/ipmt/controller/ipmt_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ipmtDTO "gso_backend/internals/features/reports/ipmt/dto"
	ipmtService "gso_backend/internals/features/reports/ipmt/service"
	helper "gso_backend/internals/helpers"
)

type IpmtController struct {
	DB      *gorm.DB
	Matcher *ipmtService.MatcherService
	Builder *ipmtService.BuilderService
	Exporter *ipmtService.ExportService
}

func NewIpmtController(db *gorm.DB) *IpmtController {
	return &IpmtController{
		DB:      db,
		Matcher: ipmtService.NewMatcherService(db),
		Builder: ipmtService.NewBuilderService(db),
		Exporter: ipmtService.NewExportService(db),
	}
}

/* ===================== HANDLERS ===================== */

// GET /admin/reports/ipmt/preview?month=YYYY-MM&unit=...&personnel=...
func (h *IpmtController) Preview(c *fiber.Ctx) error {
	monthFilter := c.Query("month")
	if monthFilter == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Month is required in 'YYYY-MM' format.")
	}
	year, month, err := helper.ParseMonth(monthFilter)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	unitFilter := c.Query("unit", "all")
	personnel := queryList(c, "personnel")

	rows, err := h.Matcher.Collect(year, month, unitFilter, personnel)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to collect IPMT rows")
	}

	return c.JSON(fiber.Map{
		"month":     monthFilter,
		"unit":      unitFilter,
		"personnel": personnel,
		"reports":   rows,
	})
}

// POST /admin/reports/ipmt
func (h *IpmtController) Save(c *fiber.Ctx) error {
	var req ipmtDTO.SaveIpmtRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid JSON payload")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if _, _, err := helper.ParseMonth(req.Month); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	outcomes, err := h.Builder.BuildOrUpdate(c.UserContext(), req.Month, req.Unit, req.Personnel, req.Rows)
	if err != nil {
		switch {
		case errors.Is(err, ipmtService.ErrMissingInput):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, ipmtService.ErrUnitNotFound):
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Unit '%s' not found", req.Unit))
		default:
			code, msg := helper.MapPGError(err)
			return fiber.NewError(code, msg)
		}
	}

	return c.JSON(ipmtDTO.SaveIpmtResponse{Status: "success", Outcomes: outcomes})
}

// GET /admin/reports/ipmt/export?month=YYYY-MM&unit=...&personnel=...
func (h *IpmtController) Export(c *fiber.Ctx) error {
	monthFilter := c.Query("month")
	if monthFilter == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Month is required in 'YYYY-MM' format.")
	}
	if _, _, err := helper.ParseMonth(monthFilter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	unitFilter := c.Query("unit", "all")
	personnel := queryList(c, "personnel")

	wb, err := h.Exporter.BuildWorkbook(monthFilter, unitFilter, personnel)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build workbook")
	}
	defer wb.Close()

	filename := fmt.Sprintf("IPMT_%s_%s.xlsx", unitFilter, monthFilter)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render workbook")
	}
	return c.Send(buf.Bytes())
}

/* ===================== HELPERS ===================== */

// queryList reads a repeatable query param (?personnel=a&personnel=b).
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		if string(k) == key && len(v) > 0 {
			out = append(out, string(v))
		}
	})
	return out
}
