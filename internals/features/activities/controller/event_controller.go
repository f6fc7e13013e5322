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

type EventController struct{ DB *gorm.DB }

func NewEventController(db *gorm.DB) *EventController { return &EventController{DB: db} }

var validateEvent = validator.New()

// ===================== LIST =====================
// GET /api/a/events?school_id=&class_id=&search=
func (h *EventController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&activitiesModel.EventModel{}).Where("school_id = ?", schoolID)
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

	var rows []activitiesModel.EventModel
	if err := tx.Order("start_time desc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", activitiesDTO.ToEventResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/events/:id
func (h *EventController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row activitiesModel.EventModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", activitiesDTO.ToEventResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req activitiesDTO.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row activitiesModel.EventModel
	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time/end_time harus format RFC3339")
	}
	if !row.EndTime.After(row.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Event created", activitiesDTO.ToEventResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req activitiesDTO.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row activitiesModel.EventModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	if err := req.ApplyToModel(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time/end_time harus format RFC3339")
	}
	if !row.EndTime.After(row.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time must be after start_time")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Event updated", activitiesDTO.ToEventResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&activitiesModel.EventModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"id": id})
}
