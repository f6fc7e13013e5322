package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	financeDTO "schoolku_backend/internals/features/finance/dto"
	financeModel "schoolku_backend/internals/features/finance/model"
	financeService "schoolku_backend/internals/features/finance/service"
	helper "schoolku_backend/internals/helpers"
)

type PaymentController struct{ DB *gorm.DB }

func NewPaymentController(db *gorm.DB) *PaymentController { return &PaymentController{DB: db} }

var validatePayment = validator.New()

// ===================== LIST =====================
// GET /api/a/payments?school_id=&student_id=
func (h *PaymentController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.Model(&financeModel.PaymentModel{}).Where("school_id = ?", schoolID)
	if v := c.QueryInt("student_id"); v > 0 {
		tx = tx.Where("student_id = ?", v)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var rows []financeModel.PaymentModel
	if err := tx.Preload("FeePayments").
		Order("payment_date desc, id desc").
		Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonList(c, "ok", financeDTO.ToPaymentResponses(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== DETAIL =====================
// GET /api/a/payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row financeModel.PaymentModel
	if err := h.DB.Preload("FeePayments").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "ok", financeDTO.ToPaymentResponse(row))
}

// ===================== CREATE =====================
// POST /api/a/payments — validasi alokasi dulu, baru satu transaksi atomik
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req financeDTO.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePayment.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	payment, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_date harus format RFC3339 atau YYYY-MM-DD")
	}

	if err := financeService.CreatePayment(h.DB, &payment, req.Allocations()); err != nil {
		if errors.Is(err, financeService.ErrOverAllocated) ||
			strings.Contains(err.Error(), "student fee") ||
			strings.Contains(err.Error(), "allocation") {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonCreated(c, "Payment created", financeDTO.ToPaymentResponse(payment))
}

// ===================== DELETE =====================
// DELETE /api/a/payments/:id — efek tiap alokasi dibalik dalam transaksi yang sama
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := financeService.DeletePayment(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonDeleted(c, "Payment deleted", fiber.Map{"id": id})
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// POST /api/payments/notification — path ini di-skip AuthMiddleware
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}

	// Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	got := sha512sum(notif.OrderID + notif.StatusCode + notif.GrossAmount + configs.MidtransServerKey)
	if want == "" || got != want {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	feeID, ok := financeService.ParseOrderID(notif.OrderID)
	if !ok {
		_ = h.logGatewayEvent(c, nil, notif, "ignored")
		return helper.JsonOK(c, "ignored", fiber.Map{"reason": "unknown order_id"})
	}

	if !financeService.IsSettled(notif.TransactionStatus, notif.FraudStatus) {
		_ = h.logGatewayEvent(c, nil, notif, "received")
		return helper.JsonOK(c, "received", fiber.Map{"transaction_status": notif.TransactionStatus})
	}

	// Midtrans bisa kirim ulang notifikasi yang sama; order yang sudah
	// diproses tidak boleh mengkredit fee dua kali.
	processed, err := h.orderAlreadyProcessed(notif.OrderID)
	if err != nil {
		return helper.JsonDBError(c, err, "")
	}
	if processed {
		_ = h.logGatewayEvent(c, nil, notif, "duplicate")
		return helper.JsonOK(c, "ignored", fiber.Map{"reason": "duplicate notification"})
	}

	var fee financeModel.StudentFeeModel
	if err := h.DB.First(&fee, feeID).Error; err != nil {
		_ = h.logGatewayEvent(c, nil, notif, "failed")
		// balas 200 supaya Midtrans tidak retry terus
		return helper.JsonOK(c, "ignored", fiber.Map{"reason": "student fee not found"})
	}

	gross, err := strconv.ParseFloat(notif.GrossAmount, 64)
	if err != nil || gross <= 0 {
		_ = h.logGatewayEvent(c, nil, notif, "failed")
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid gross_amount")
	}

	// Alokasi dibatasi sisa tagihan; kelebihan bayar tidak dilacak ke fee mana pun.
	alloc := gross
	if remaining := fee.Amount - fee.PaidAmount; alloc > remaining {
		alloc = remaining
	}

	ref := notif.TransactionID
	payment := financeModel.PaymentModel{
		SchoolID:    fee.SchoolID,
		StudentID:   fee.StudentID,
		Amount:      gross,
		PaymentDate: time.Now(),
		Method:      "ONLINE",
		Reference:   &ref,
	}

	var allocs []financeService.Allocation
	if alloc > 0 {
		allocs = []financeService.Allocation{{StudentFeeID: fee.ID, Amount: alloc}}
	}
	if err := financeService.CreatePayment(h.DB, &payment, allocs); err != nil {
		_ = h.logGatewayEvent(c, nil, notif, "failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "record payment failed: "+err.Error())
	}

	_ = h.logGatewayEvent(c, &payment.ID, notif, "processed")

	return helper.JsonOK(c, "ok", fiber.Map{
		"payment_id":         payment.ID,
		"transaction_status": notif.TransactionStatus,
	})
}

func sha512sum(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (h *PaymentController) orderAlreadyProcessed(orderID string) (bool, error) {
	var n int64
	err := h.DB.Model(&financeModel.PaymentGatewayEventModel{}).
		Where("order_id = ? AND status = ?", orderID, "processed").
		Count(&n).Error
	return n > 0, err
}

func (h *PaymentController) logGatewayEvent(c *fiber.Ctx, paymentID *uint, notif midtransNotif, status string) error {
	headers := map[string]string{}
	for k, v := range c.GetReqHeaders() {
		headers[k] = strings.Join(v, ",")
	}
	headersJSON, _ := sonic.Marshal(headers)
	payloadJSON, _ := sonic.Marshal(notif)

	sig := notif.SignatureKey
	ev := financeModel.PaymentGatewayEventModel{
		PaymentID: paymentID,
		OrderID:   notif.OrderID,
		Provider:  "midtrans",
		Status:    status,
		Signature: &sig,
		Payload:   datatypes.JSON(payloadJSON),
		Headers:   datatypes.JSON(headersJSON),
	}
	return h.DB.Create(&ev).Error
}
