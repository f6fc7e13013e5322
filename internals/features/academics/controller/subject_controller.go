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

type SubjectController struct{ DB *gorm.DB }

func NewSubjectController(db *gorm.DB) *SubjectController { return &SubjectController{DB: db} }

var validateSubject = validator.New()

func (h *SubjectController) teacherIDsFor(subjectID uint) ([]uint, error) {
	var ids []uint
	err := h.DB.Model(&academicsModel.SubjectTeacherModel{}).
		Where("subject_id = ?", subjectID).
		Order("teacher_id asc").
		Pluck("teacher_id", &ids).Error
	return ids, err
}

// syncTeachers ganti seluruh daftar pengajar subject (full replace, di dalam tx).
func syncTeachers(tx *gorm.DB, subjectID uint, teacherIDs []uint) error {
	if err := tx.Where("subject_id = ?", subjectID).
		Delete(&academicsModel.SubjectTeacherModel{}).Error; err != nil {
		return err
	}
	for _, tid := range teacherIDs {
		if err := tx.Create(&academicsModel.SubjectTeacherModel{
			SubjectID: subjectID,
			TeacherID: tid,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// ===================== LIST =====================
// GET /api/a/subjects?school_id=&search=
func (h *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&academicsModel.SubjectModel{}).Where("school_id = ?", schoolID)
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		tx = tx.Where("name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []academicsModel.SubjectModel
	if err := tx.Order("name asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	out := make([]academicsDTO.SubjectResponse, 0, len(rows))
	for _, row := range rows {
		ids, err := h.teacherIDsFor(row.ID)
		if err != nil {
			return helper.JsonDBError(c, err, "")
		}
		out = append(out, academicsDTO.ToSubjectResponse(row, ids))
	}
	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/subjects/:id
func (h *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row academicsModel.SubjectModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	ids, err := h.teacherIDsFor(row.ID)
	if err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", academicsDTO.ToSubjectResponse(row, ids))
}

// ===================== CREATE =====================
// POST /api/a/subjects — subject + daftar pengajarnya dalam satu transaksi
func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req academicsDTO.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	row := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return syncTeachers(tx, row.ID, req.TeacherIDs)
	})
	if err != nil {
		return helper.JsonDBError(c, err, "A subject with this name already exists for this school")
	}
	return helper.JsonCreated(c, "Subject created",
		academicsDTO.ToSubjectResponse(row, req.TeacherIDs))
}

// ===================== UPDATE =====================
// PUT /api/a/subjects/:id — full replace, termasuk daftar pengajar
func (h *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req academicsDTO.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubject.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row academicsModel.SubjectModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return syncTeachers(tx, row.ID, req.TeacherIDs)
	})
	if err != nil {
		return helper.JsonDBError(c, err, "A subject with this name already exists for this school")
	}
	return helper.JsonUpdated(c, "Subject updated",
		academicsDTO.ToSubjectResponse(row, req.TeacherIDs))
}

// ===================== DELETE =====================
// DELETE /api/a/subjects/:id
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ?", id).
			Delete(&academicsModel.SubjectTeacherModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&academicsModel.SubjectModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"id": id})
}
