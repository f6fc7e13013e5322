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

type ExamController struct{ DB *gorm.DB }

func NewExamController(db *gorm.DB) *ExamController { return &ExamController{DB: db} }

var validateExam = validator.New()

// ===================== LIST =====================
// GET /api/a/exams?school_id=&lesson_id=&search=
func (h *ExamController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&assessModel.ExamModel{}).Where("school_id = ?", schoolID)
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

	var rows []assessModel.ExamModel
	if err := tx.Order("start_time desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", assessDTO.ToExamResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/exams/:id
func (h *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row assessModel.ExamModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", assessDTO.ToExamResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/exams
func (h *ExamController) Create(c *fiber.Ctx) error {
	var req assessDTO.ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row assessModel.ExamModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time/end_time harus format RFC3339")
	}
	if !row.EndTime.After(row.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Exam created", assessDTO.ToExamResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/exams/:id
func (h *ExamController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req assessDTO.ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateExam.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row assessModel.ExamModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time/end_time harus format RFC3339")
	}
	if !row.EndTime.After(row.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Exam updated", assessDTO.ToExamResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/exams/:id
func (h *ExamController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&assessModel.ExamModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
	}
	return helper.JsonDeleted(c, "Exam deleted", fiber.Map{"id": id})
}
