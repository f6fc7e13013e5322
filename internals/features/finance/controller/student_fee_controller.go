package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	financeDTO "schoolku_backend/internals/features/finance/dto"
	financeModel "schoolku_backend/internals/features/finance/model"
	financeService "schoolku_backend/internals/features/finance/service"
	peopleModel "schoolku_backend/internals/features/people/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentFeeController struct{ DB *gorm.DB }

func NewStudentFeeController(db *gorm.DB) *StudentFeeController {
	return &StudentFeeController{DB: db}
}

var validateStudentFee = validator.New()

// ===================== LIST =====================
// GET /api/a/student-fees?school_id=&student_id=&status=
func (h *StudentFeeController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&financeModel.StudentFeeModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("student_id"); v > 0 {
		tx = tx.Where("student_id = ?", v)
	}
	if s := c.Query("status"); s != "" {
		tx = tx.Where("status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []financeModel.StudentFeeModel
	if err := tx.Order("due_date asc, id asc").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", financeDTO.ToStudentFeeResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/student-fees/:id
func (h *StudentFeeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row financeModel.StudentFeeModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student fee not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", financeDTO.ToStudentFeeResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/student-fees — status diturunkan dari due date, paid_amount mulai 0
func (h *StudentFeeController) Create(c *fiber.Ctx) error {
	var req financeDTO.StudentFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudentFee.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row financeModel.StudentFeeModel
	req.ApplyToModel(&row)
	row.PaidAmount = 0
	row.Status = financeService.DeriveStatus(0, row.Amount, row.DueDate, time.Now())

	if err := h.DB.Create(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Student fee created", financeDTO.ToStudentFeeResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/student-fees/:id — amount/due date saja; paid/status tetap hasil derivasi
func (h *StudentFeeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req financeDTO.StudentFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudentFee.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var row financeModel.StudentFeeModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student fee not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	req.ApplyToModel(&row)
	if err := financeService.ValidateAmountChange(row.Amount, row.PaidAmount); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	row.Status = financeService.DeriveStatus(row.PaidAmount, row.Amount, row.DueDate, time.Now())

	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonUpdated(c, "Student fee updated", financeDTO.ToStudentFeeResponse(row))
}

// ===================== DELETE =====================
// DELETE /api/a/student-fees/:id
func (h *StudentFeeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := h.DB.Delete(&financeModel.StudentFeeModel{}, id)
	if res.Error != nil {
		return helper.JsonDBError(c, res.Error, "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student fee not found")
	}
	return helper.JsonDeleted(c, "Student fee deleted", fiber.Map{"id": id})
}

// ===================== ASSIGN =====================
// POST /api/a/student-fees/assign — terapkan Fee ke satu siswa atau seluruh grade
func (h *StudentFeeController) Assign(c *fiber.Ctx) error {
	var req financeDTO.AssignStudentFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudentFee.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if (req.GradeID == nil) == (req.StudentID == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "exactly one of grade_id or student_id must be set")
	}

	var fee financeModel.FeeModel
	if err := h.DB.Where("id = ? AND school_id = ?", req.FeeID, req.SchoolID).First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	var students []peopleModel.StudentModel
	q := h.DB.Where("school_id = ?", req.SchoolID)
	if req.StudentID != nil {
		q = q.Where("id = ?", *req.StudentID)
	} else {
		q = q.Where("grade_id = ?", *req.GradeID)
	}
	if err := q.Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	if len(students) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No students matched")
	}

	now := time.Now()
	rows := make([]financeModel.StudentFeeModel, 0, len(students))
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, s := range students {
			row := financeModel.StudentFeeModel{
				SchoolID:  req.SchoolID,
				FeeID:     fee.ID,
				StudentID: s.ID,
				Amount:    fee.Amount,
				DueDate:   dueDate,
				Status:    financeService.DeriveStatus(0, fee.Amount, dueDate, now),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Student fees assigned", financeDTO.ToStudentFeeResponses(rows))
}

// ===================== CHECKOUT =====================
// POST /api/a/student-fees/:id/checkout — Snap transaction untuk sisa tagihan
func (h *StudentFeeController) Checkout(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var fee financeModel.StudentFeeModel
	if err := h.DB.First(&fee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student fee not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	if fee.Status == financeModel.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "This fee is already fully paid")
	}

	var student peopleModel.StudentModel
	if err := h.DB.First(&student, fee.StudentID).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	email := ""
	if student.Email != nil {
		email = *student.Email
	}

	orderID := financeService.BuildOrderID(fee.ID, uuid.NewString()[:8])
	token, redirectURL, err := financeService.GenerateSnapToken(orderID, fee, student.Name, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans: "+err.Error())
	}

	return helper.JsonOK(c, "Checkout created", financeDTO.CheckoutResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}
