package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessDTO "schoolku_backend/internals/features/assessments/dto"
	assessModel "schoolku_backend/internals/features/assessments/model"
	helper "schoolku_backend/internals/helpers"
)

type AssignmentController struct{ DB *gorm.DB }

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

var validateAssignment = validator.New()

// ===================== LIST =====================
// GET /api/a/assignments?school_id=&lesson_id=&search=
func (h *AssignmentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&assessModel.AssignmentModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("lesson_id"); v > 0 {
		tx = tx.Where("lesson_id = ?", v)
	}
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		tx = tx.Where("title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []assessModel.AssignmentModel
	if err := tx.Order("due_date desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", assessDTO.ToAssignmentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/assignments/:id
func (h *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row assessModel.AssignmentModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", assessDTO.ToAssignmentResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/assignments
func (h *AssignmentController) Create(c *fiber.Ctx) error {
	var req assessDTO.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAssignment.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row assessModel.AssignmentModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date/due_date harus format RFC3339")
	}
	if !row.DueDate.After(row.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be after start_date")
	}

	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Assignment created", assessDTO.ToAssignmentResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/assignments/:id
func (h *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req assessDTO.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAssignment.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row assessModel.AssignmentModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date/due_date harus format RFC3339")
	}
	if !row.DueDate.After(row.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be after start_date")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Assignment updated", assessDTO.ToAssignmentResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/assignments/:id
func (h *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&assessModel.AssignmentModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"id": id})
}
