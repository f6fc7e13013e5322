package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessDTO "schoolku_backend/internals/features/assessments/dto"
	assessModel "schoolku_backend/internals/features/assessments/model"
	helper "schoolku_backend/internals/helpers"
)

type ResultController struct{ DB *gorm.DB }

func NewResultController(db *gorm.DB) *ResultController { return &ResultController{DB: db} }

var validateResult = validator.New()

// ===================== LIST =====================
// GET /api/a/results?school_id=&student_id=&exam_id=&assignment_id=
func (h *ResultController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&assessModel.ResultModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("student_id"); v > 0 {
		tx = tx.Where("student_id = ?", v)
	}
	if v := c.QueryInt("exam_id"); v > 0 {
		tx = tx.Where("exam_id = ?", v)
	}
	if v := c.QueryInt("assignment_id"); v > 0 {
		tx = tx.Where("assignment_id = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []assessModel.ResultModel
	if err := tx.Order("id desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", assessDTO.ToResultResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/results/:id
func (h *ResultController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row assessModel.ResultModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", assessDTO.ToResultResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/results
func (h *ResultController) Create(c *fiber.Ctx) error {
	var req assessDTO.ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResult.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if err := req.CheckTarget(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row assessModel.ResultModel
	req.ApplyToModel(&row)
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Result created", assessDTO.ToResultResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/results/:id
func (h *ResultController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req assessDTO.ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResult.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if err := req.CheckTarget(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row assessModel.ResultModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Result updated", assessDTO.ToResultResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/results/:id
func (h *ResultController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&assessModel.ResultModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
	}
	return helper.JsonDeleted(c, "Result deleted", fiber.Map{"id": id})
}
