package dto

import (
	"time"

	"schoolku_backend/internals/features/finance/model"
	"schoolku_backend/internals/features/finance/service"
)

/* ===============================
   Fee (template)
=================================*/

type FeeRequest struct {
	SchoolID    uint    `json:"school_id" validate:"required,min=1"`
	Name        string  `json:"name" validate:"required,max=120"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Frequency   string  `json:"frequency" validate:"required,oneof=ONCE MONTHLY TERMLY YEARLY"`
	GradeID     *uint   `json:"grade_id" validate:"omitempty,min=1"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type FeeResponse struct {
	ID          uint      `json:"id"`
	SchoolID    uint      `json:"school_id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Frequency   string    `json:"frequency"`
	GradeID     *uint     `json:"grade_id,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *FeeRequest) ApplyToModel(m *model.FeeModel) {
	m.SchoolID = r.SchoolID
	m.Name = r.Name
	m.Amount = r.Amount
	m.Frequency = r.Frequency
	m.GradeID = r.GradeID
	if r.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *r.DueDate); err == nil {
			m.DueDate = &t
		}
	} else {
		m.DueDate = nil
	}
	m.Description = r.Description
}

func ToFeeResponse(m model.FeeModel) FeeResponse {
	var due *string
	if m.DueDate != nil {
		s := m.DueDate.Format("2006-01-02")
		due = &s
	}
	return FeeResponse{ID: m.ID, SchoolID: m.SchoolID, Name: m.Name,
		Amount: m.Amount, Frequency: m.Frequency, GradeID: m.GradeID,
		DueDate: due, Description: m.Description,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToFeeResponses(ms []model.FeeModel) []FeeResponse {
	out := make([]FeeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToFeeResponse(m))
	}
	return out
}

/* ===============================
   StudentFee
=================================*/

// StudentFeeRequest: status & paid_amount TIDAK diterima dari klien.
type StudentFeeRequest struct {
	SchoolID  uint    `json:"school_id" validate:"required,min=1"`
	FeeID     uint    `json:"fee_id" validate:"required,min=1"`
	StudentID uint    `json:"student_id" validate:"required,min=1"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	DueDate   string  `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// AssignStudentFeesRequest: terapkan satu Fee ke seluruh siswa sebuah grade
// (atau satu siswa saja kalau student_id diisi).
type AssignStudentFeesRequest struct {
	SchoolID  uint   `json:"school_id" validate:"required,min=1"`
	FeeID     uint   `json:"fee_id" validate:"required,min=1"`
	GradeID   *uint  `json:"grade_id" validate:"omitempty,min=1"`
	StudentID *uint  `json:"student_id" validate:"omitempty,min=1"`
	DueDate   string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

type StudentFeeResponse struct {
	ID         uint      `json:"id"`
	SchoolID   uint      `json:"school_id"`
	FeeID      uint      `json:"fee_id"`
	StudentID  uint      `json:"student_id"`
	Amount     float64   `json:"amount"`
	PaidAmount float64   `json:"paid_amount"`
	DueDate    string    `json:"due_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *StudentFeeRequest) ApplyToModel(m *model.StudentFeeModel) {
	m.SchoolID = r.SchoolID
	m.FeeID = r.FeeID
	m.StudentID = r.StudentID
	m.Amount = r.Amount
	if t, err := time.Parse("2006-01-02", r.DueDate); err == nil {
		m.DueDate = t
	}
}

func ToStudentFeeResponse(m model.StudentFeeModel) StudentFeeResponse {
	return StudentFeeResponse{ID: m.ID, SchoolID: m.SchoolID, FeeID: m.FeeID,
		StudentID: m.StudentID, Amount: m.Amount, PaidAmount: m.PaidAmount,
		DueDate: m.DueDate.Format("2006-01-02"), Status: m.Status,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToStudentFeeResponses(ms []model.StudentFeeModel) []StudentFeeResponse {
	out := make([]StudentFeeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentFeeResponse(m))
	}
	return out
}

/* ===============================
   Payment
=================================*/

type FeeAllocationRequest struct {
	StudentFeeID uint    `json:"student_fee_id" validate:"required,min=1"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

type PaymentRequest struct {
	SchoolID       uint                   `json:"school_id" validate:"required,min=1"`
	StudentID      uint                   `json:"student_id" validate:"required,min=1"`
	Amount         float64                `json:"amount" validate:"required,gt=0"`
	PaymentDate    string                 `json:"payment_date" validate:"required"`
	Method         string                 `json:"payment_method" validate:"required,oneof=CASH BANK_TRANSFER MOBILE_MONEY CARD ONLINE"`
	Reference      *string                `json:"reference" validate:"omitempty,max=120"`
	Notes          *string                `json:"notes" validate:"omitempty,max=500"`
	FeeAllocations []FeeAllocationRequest `json:"fee_allocations" validate:"omitempty,dive"`
}

func (r *PaymentRequest) Allocations() []service.Allocation {
	out := make([]service.Allocation, 0, len(r.FeeAllocations))
	for _, a := range r.FeeAllocations {
		out = append(out, service.Allocation{StudentFeeID: a.StudentFeeID, Amount: a.Amount})
	}
	return out
}

func (r *PaymentRequest) ToModel() (model.PaymentModel, error) {
	date, err := time.Parse(time.RFC3339, r.PaymentDate)
	if err != nil {
		// terima juga tanggal polos
		date, err = time.Parse("2006-01-02", r.PaymentDate)
		if err != nil {
			return model.PaymentModel{}, err
		}
	}
	return model.PaymentModel{
		SchoolID:    r.SchoolID,
		StudentID:   r.StudentID,
		Amount:      r.Amount,
		PaymentDate: date,
		Method:      r.Method,
		Reference:   r.Reference,
		Notes:       r.Notes,
	}, nil
}

type FeePaymentResponse struct {
	ID           uint    `json:"id"`
	PaymentID    uint    `json:"payment_id"`
	StudentFeeID uint    `json:"student_fee_id"`
	Amount       float64 `json:"amount"`
}

type PaymentResponse struct {
	ID          uint                 `json:"id"`
	SchoolID    uint                 `json:"school_id"`
	StudentID   uint                 `json:"student_id"`
	Amount      float64              `json:"amount"`
	PaymentDate time.Time            `json:"payment_date"`
	Method      string               `json:"payment_method"`
	Reference   *string              `json:"reference,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
	FeePayments []FeePaymentResponse `json:"fee_payments"`
	CreatedAt   time.Time            `json:"created_at"`
}

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	fps := make([]FeePaymentResponse, 0, len(m.FeePayments))
	for _, fp := range m.FeePayments {
		fps = append(fps, FeePaymentResponse{ID: fp.ID, PaymentID: fp.PaymentID,
			StudentFeeID: fp.StudentFeeID, Amount: fp.Amount})
	}
	return PaymentResponse{ID: m.ID, SchoolID: m.SchoolID, StudentID: m.StudentID,
		Amount: m.Amount, PaymentDate: m.PaymentDate, Method: m.Method,
		Reference: m.Reference, Notes: m.Notes, FeePayments: fps,
		CreatedAt: m.CreatedAt}
}

func ToPaymentResponses(ms []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}

/* ===============================
   Checkout
=================================*/

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}
