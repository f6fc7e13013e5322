package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	peopleDTO "schoolku_backend/internals/features/people/dto"
	peopleModel "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

type ParentController struct{ DB *gorm.DB }

func NewParentController(db *gorm.DB) *ParentController { return &ParentController{DB: db} }

var validateParent = validator.New()

// ===================== LIST =====================
// GET /api/a/parents?school_id=&search=
func (h *ParentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&peopleModel.ParentModel{}).Where("school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name ILIKE ? OR surname ILIKE ? OR username ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []peopleModel.ParentModel
	if err := tx.Order("name asc, surname asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", peopleDTO.ToParentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/parents/:id — include anak-anaknya
func (h *ParentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row peopleModel.ParentModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	var students []peopleModel.StudentModel
	if err := h.DB.Where("parent_id = ?", row.ID).Order("name asc").Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", peopleDTO.ToParentResponse(row, students))
}

// ===================== CREATE =====================
// POST /api/a/parents
func (h *ParentController) Create(c *fiber.Ctx) error {
	var req peopleDTO.ParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateParent.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A parent with this username or phone already exists for this school")
	}
	return helper.JsonCreated(c, "Parent created", peopleDTO.ToParentResponse(row, nil))
}

// ===================== UPDATE =====================
// PUT /api/a/parents/:id
func (h *ParentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req peopleDTO.ParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateParent.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row peopleModel.ParentModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A parent with this username or phone already exists for this school")
	}
	return helper.JsonUpdated(c, "Parent updated", peopleDTO.ToParentResponse(row, nil))
}

// ===================== DELETE =====================
// DELETE /api/a/parents/:id
func (h *ParentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&peopleModel.ParentModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}
	return helper.JsonDeleted(c, "Parent deleted", fiber.Map{"id": id})
}
