package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsDTO "schoolku_backend/internals/features/academics/dto"
	academicsModel "schoolku_backend/internals/features/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type GradeController struct{ DB *gorm.DB }

func NewGradeController(db *gorm.DB) *GradeController { return &GradeController{DB: db} }

var validateGrade = validator.New()

func gradeDupMessage(level int) string {
	return fmt.Sprintf("Grade level %d already exists for this school", level)
}

// ===================== LIST =====================
// GET /api/a/grades?school_id=
func (h *GradeController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&academicsModel.GradeModel{}).Where("school_id = ?", schoolID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []academicsModel.GradeModel
	if err := tx.Order("level asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", academicsDTO.ToGradeResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/grades/:id
func (h *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row academicsModel.GradeModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", academicsDTO.ToGradeResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/grades
func (h *GradeController) Create(c *fiber.Ctx) error {
	var req academicsDTO.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGrade.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, gradeDupMessage(req.Level))
	}
	return helper.JsonCreated(c, "Grade created", academicsDTO.ToGradeResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/grades/:id
func (h *GradeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req academicsDTO.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGrade.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row academicsModel.GradeModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, gradeDupMessage(req.Level))
	}
	return helper.JsonUpdated(c, "Grade updated", academicsDTO.ToGradeResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/grades/:id
func (h *GradeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&academicsModel.GradeModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Grade not found")
	}
	return helper.JsonDeleted(c, "Grade deleted", fiber.Map{"id": id})
}
