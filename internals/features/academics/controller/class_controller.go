package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsDTO "schoolku_backend/internals/features/academics/dto"
	academicsModel "schoolku_backend/internals/features/academics/model"
	helper "schoolku_backend/internals/helpers"
)

type ClassController struct{ DB *gorm.DB }

func NewClassController(db *gorm.DB) *ClassController { return &ClassController{DB: db} }

var validateClass = validator.New()

// ===================== LIST =====================
// GET /api/a/classes?school_id=&grade_id=&search=
func (h *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&academicsModel.ClassModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("grade_id"); v > 0 {
		tx = tx.Where("grade_id = ?", v)
	}
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []academicsModel.ClassModel
	if err := tx.Order("name asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", academicsDTO.ToClassResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/classes/:id
func (h *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row academicsModel.ClassModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", academicsDTO.ToClassResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req academicsDTO.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A class with this name already exists for this school")
	}
	return helper.JsonCreated(c, "Class created", academicsDTO.ToClassResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req academicsDTO.ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClass.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row academicsModel.ClassModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A class with this name already exists for this school")
	}
	return helper.JsonUpdated(c, "Class updated", academicsDTO.ToClassResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&academicsModel.ClassModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"id": id})
}
