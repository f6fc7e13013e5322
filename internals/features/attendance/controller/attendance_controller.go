package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "schoolku_backend/internals/features/attendance/dto"
	attendanceModel "schoolku_backend/internals/features/attendance/model"
	helper "schoolku_backend/internals/helpers"
)

type AttendanceController struct{ DB *gorm.DB }

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validateAttendance = validator.New()

// ===================== LIST =====================
// GET /api/a/attendance?school_id=&student_id=&lesson_id=&date_from=&date_to=
func (h *AttendanceController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 50, 200)

	tx := h.DB.Model(&attendanceModel.AttendanceModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("student_id"); v > 0 {
		tx = tx.Where("student_id = ?", v)
	}
	if v := c.QueryInt("lesson_id"); v > 0 {
		tx = tx.Where("lesson_id = ?", v)
	}
	if raw := c.Query("date_from"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			tx = tx.Where("date >= ?", t)
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			tx = tx.Where("date <= ?", t)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []attendanceModel.AttendanceModel
	if err := tx.Order("date desc, id desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", attendanceDTO.ToAttendanceResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/attendance/:id
func (h *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row attendanceModel.AttendanceModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", attendanceDTO.ToAttendanceResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/attendance
func (h *AttendanceController) Create(c *fiber.Ctx) error {
	var req attendanceDTO.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row attendanceModel.AttendanceModel
	req.ApplyToModel(&row)
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "Attendance for this student, lesson and date already exists")
	}
	return helper.JsonCreated(c, "Attendance recorded", attendanceDTO.ToAttendanceResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/attendance/:id
func (h *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req attendanceDTO.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row attendanceModel.AttendanceModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "Attendance for this student, lesson and date already exists")
	}
	return helper.JsonUpdated(c, "Attendance updated", attendanceDTO.ToAttendanceResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/attendance/:id
func (h *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&attendanceModel.AttendanceModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance not found")
	}
	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"id": id})
}
