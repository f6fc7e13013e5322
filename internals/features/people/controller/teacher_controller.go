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

type TeacherController struct{ DB *gorm.DB }

func NewTeacherController(db *gorm.DB) *TeacherController { return &TeacherController{DB: db} }

var validateTeacher = validator.New()

// ===================== LIST =====================
// GET /api/a/teachers?school_id=&search=
func (h *TeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&peopleModel.TeacherModel{}).Where("school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name ILIKE ? OR surname ILIKE ? OR username ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []peopleModel.TeacherModel
	if err := tx.Order("name asc, surname asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", peopleDTO.ToTeacherResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/teachers/:id
func (h *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row peopleModel.TeacherModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", peopleDTO.ToTeacherResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/teachers
func (h *TeacherController) Create(c *fiber.Ctx) error {
	var req peopleDTO.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A teacher with this username or phone already exists for this school")
	}
	return helper.JsonCreated(c, "Teacher created", peopleDTO.ToTeacherResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/teachers/:id
func (h *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req peopleDTO.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTeacher.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row peopleModel.TeacherModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A teacher with this username or phone already exists for this school")
	}
	return helper.JsonUpdated(c, "Teacher updated", peopleDTO.ToTeacherResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/teachers/:id
func (h *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&peopleModel.TeacherModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"id": id})
}
