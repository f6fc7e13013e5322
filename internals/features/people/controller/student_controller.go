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

type StudentController struct{ DB *gorm.DB }

func NewStudentController(db *gorm.DB) *StudentController { return &StudentController{DB: db} }

var validateStudent = validator.New()

// ===================== LIST =====================
// GET /api/a/students?school_id=&class_id=&grade_id=&parent_id=&search=
func (h *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&peopleModel.StudentModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("class_id"); v > 0 {
		tx = tx.Where("class_id = ?", v)
	}
	if v := c.QueryInt("grade_id"); v > 0 {
		tx = tx.Where("grade_id = ?", v)
	}
	if v := c.QueryInt("parent_id"); v > 0 {
		tx = tx.Where("parent_id = ?", v)
	}
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("name ILIKE ? OR surname ILIKE ? OR username ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []peopleModel.StudentModel
	if err := tx.Order("name asc, surname asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", peopleDTO.ToStudentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row peopleModel.StudentModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", peopleDTO.ToStudentResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req peopleDTO.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A student with this username or phone already exists for this school")
	}
	return helper.JsonCreated(c, "Student created", peopleDTO.ToStudentResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req peopleDTO.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row peopleModel.StudentModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "A student with this username or phone already exists for this school")
	}
	return helper.JsonUpdated(c, "Student updated", peopleDTO.ToStudentResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&peopleModel.StudentModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"id": id})
}
