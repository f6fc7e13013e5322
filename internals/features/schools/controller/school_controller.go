package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolDTO "schoolku_backend/internals/features/schools/dto"
	schoolModel "schoolku_backend/internals/features/schools/model"
	helper "schoolku_backend/internals/helpers"
)

type SchoolController struct{ DB *gorm.DB }

func NewSchoolController(db *gorm.DB) *SchoolController { return &SchoolController{DB: db} }

var validateSchool = validator.New()

// ===================== LIST =====================
// GET /api/schools
func (h *SchoolController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&schoolModel.SchoolModel{})
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []schoolModel.SchoolModel
	if err := tx.Order("name asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return helper.JsonList(c, "ok", schoolDTO.ToSchoolResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/schools/:id
func (h *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row schoolModel.SchoolModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", schoolDTO.ToSchoolResponse(row))
}

// ===================== CREATE =====================
// POST /api/schools
func (h *SchoolController) Create(c *fiber.Ctx) error {
	var req schoolDTO.SchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchool.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A school with this name already exists")
	}
	return helper.JsonCreated(c, "School created", schoolDTO.ToSchoolResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/schools/:id (full replace field editable)
func (h *SchoolController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req schoolDTO.SchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchool.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row schoolModel.SchoolModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A school with this name already exists")
	}
	return helper.JsonUpdated(c, "School updated", schoolDTO.ToSchoolResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/schools/:id (hard delete; cascade ke semua entity milik tenant)
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&schoolModel.SchoolModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}
	return helper.JsonDeleted(c, "School deleted", fiber.Map{"id": id})
}
