package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsDTO "schoolku_backend/internals/features/academics/dto"
	academicsModel "schoolku_backend/internals/features/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type LessonController struct{ DB *gorm.DB }

func NewLessonController(db *gorm.DB) *LessonController { return &LessonController{DB: db} }

var validateLesson = validator.New()

// ===================== LIST =====================
// GET /api/a/lessons?school_id=&class_id=&teacher_id=&subject_id=
func (h *LessonController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&academicsModel.LessonModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("class_id"); v > 0 {
		tx = tx.Where("class_id = ?", v)
	}
	if v := c.QueryInt("teacher_id"); v > 0 {
		tx = tx.Where("teacher_id = ?", v)
	}
	if v := c.QueryInt("subject_id"); v > 0 {
		tx = tx.Where("subject_id = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []academicsModel.LessonModel
	if err := tx.Order("day asc, start_time asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", academicsDTO.ToLessonResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/lessons/:id
func (h *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row academicsModel.LessonModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", academicsDTO.ToLessonResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/lessons
func (h *LessonController) Create(c *fiber.Ctx) error {
	var req academicsDTO.LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row academicsModel.LessonModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time/end_time harus format RFC3339")
	}
	if !row.EndTime.After(row.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Lesson created", academicsDTO.ToLessonResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/lessons/:id
func (h *LessonController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req academicsDTO.LessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLesson.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row academicsModel.LessonModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
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
	return helper.JsonUpdated(c, "Lesson updated", academicsDTO.ToLessonResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/lessons/:id
func (h *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&academicsModel.LessonModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	}
	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"id": id})
}
