package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financeDTO "schoolku_backend/internals/features/finance/dto"
	financeModel "schoolku_backend/internals/features/finance/model"
	helper "schoolku_backend/internals/helpers"
)

type FeeController struct{ DB *gorm.DB }

func NewFeeController(db *gorm.DB) *FeeController { return &FeeController{DB: db} }

var validateFee = validator.New()

// ===================== LIST =====================
// GET /api/a/fees?school_id=&grade_id=&search=
func (h *FeeController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&financeModel.FeeModel{}).Where("school_id = ?", schoolID)
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

	var rows []financeModel.FeeModel
	if err := tx.Order("name asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", financeDTO.ToFeeResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/fees/:id
func (h *FeeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row financeModel.FeeModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", financeDTO.ToFeeResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/fees
func (h *FeeController) Create(c *fiber.Ctx) error {
	var req financeDTO.FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFee.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row financeModel.FeeModel
	req.ApplyToModel(&row)
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Fee created", financeDTO.ToFeeResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/fees/:id
func (h *FeeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req financeDTO.FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFee.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row financeModel.FeeModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Fee updated", financeDTO.ToFeeResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/fees/:id
func (h *FeeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&financeModel.FeeModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
	}
	return helper.JsonDeleted(c, "Fee deleted", fiber.Map{"id": id})
}
