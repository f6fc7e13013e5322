package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activitiesDTO "schoolku_backend/internals/features/activities/dto"
	activitiesModel "schoolku_backend/internals/features/activities/model"
	helper "schoolku_backend/internals/helpers"
)

type AnnouncementController struct{ DB *gorm.DB }

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

// ===================== LIST =====================
// GET /api/a/announcements?school_id=&class_id=&search=
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&activitiesModel.AnnouncementModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("class_id"); v > 0 {
		tx = tx.Where("class_id = ?", v)
	}
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		tx = tx.Where("title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []activitiesModel.AnnouncementModel
	if err := tx.Order("date desc, id desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", activitiesDTO.ToAnnouncementResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row activitiesModel.AnnouncementModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", activitiesDTO.ToAnnouncementResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req activitiesDTO.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row activitiesModel.AnnouncementModel
	req.ApplyToModel(&row)
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Announcement created", activitiesDTO.ToAnnouncementResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req activitiesDTO.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row activitiesModel.AnnouncementModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Announcement updated", activitiesDTO.ToAnnouncementResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&activitiesModel.AnnouncementModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"id": id})
}
