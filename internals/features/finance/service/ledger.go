package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	financeModel "schoolku_backend/internals/features/finance/model"
)

var (
	ErrOverAllocated   = errors.New("Total allocated amount cannot exceed payment amount")
	ErrAmountBelowPaid = errors.New("amount cannot be less than the already paid amount")
)

// Allocation: porsi payment yang diarahkan ke satu student fee.
type Allocation struct {
	StudentFeeID uint
	Amount       float64
}

// FeeSnapshot: potret student fee saat validasi (sebelum transaksi).
type FeeSnapshot struct {
	ID         uint
	StudentID  uint
	Amount     float64
	PaidAmount float64
}

// ValidateAllocations cek semua aturan alokasi SEBELUM transaksi dibuka:
// fee milik student yang sama, Σ alokasi ≤ amount payment, dan total alokasi
// per fee tidak melewati sisa tagihannya. Alokasi yang menunjuk fee yang sama
// dijumlahkan dulu, supaya dua alokasi kecil tidak lolos padahal gabungannya
// melewati sisa. Alokasi kosong sah (sisa tidak dilacak).
func ValidateAllocations(studentID uint, paymentAmount float64, allocs []Allocation, fees []FeeSnapshot) error {
	byID := make(map[uint]FeeSnapshot, len(fees))
	for _, f := range fees {
		byID[f.ID] = f
	}

	var sum float64
	perFee := make(map[uint]float64, len(allocs))
	for _, a := range allocs {
		if a.Amount <= 0 {
			return fmt.Errorf("allocation amount for student fee %d must be positive", a.StudentFeeID)
		}
		f, ok := byID[a.StudentFeeID]
		if !ok {
			return fmt.Errorf("student fee %d not found", a.StudentFeeID)
		}
		if f.StudentID != studentID {
			return fmt.Errorf("student fee %d does not belong to this student", a.StudentFeeID)
		}
		sum += a.Amount
		perFee[a.StudentFeeID] += a.Amount
	}
	if sum > paymentAmount {
		return ErrOverAllocated
	}
	for id, amt := range perFee {
		f := byID[id]
		if amt > f.Amount-f.PaidAmount {
			return fmt.Errorf("allocation exceeds remaining amount for student fee %d", id)
		}
	}
	return nil
}

// ValidateAmountChange jaga invariant paid_amount ≤ amount di jalur edit:
// amount baru tidak boleh turun di bawah yang sudah terbayar.
func ValidateAmountChange(newAmount, paidAmount float64) error {
	if newAmount < paidAmount {
		return ErrAmountBelowPaid
	}
	return nil
}

// ApplyAllocation: efek satu alokasi di jalur create payment.
func ApplyAllocation(paid, amount, alloc float64) (float64, string) {
	newPaid := paid + alloc
	switch {
	case newPaid >= amount:
		return newPaid, financeModel.FeeStatusPaid
	case newPaid > 0:
		return newPaid, financeModel.FeeStatusPartial
	default:
		return newPaid, financeModel.FeeStatusPending
	}
}

// ReverseAllocation: efek kebalikannya di jalur delete payment.
// Status diturunkan ulang penuh: PAID/PARTIAL/PENDING/OVERDUE by due date.
func ReverseAllocation(paid, amount, alloc float64, dueDate, now time.Time) (float64, string) {
	newPaid := paid - alloc
	if newPaid < 0 {
		newPaid = 0
	}
	return newPaid, DeriveStatus(newPaid, amount, dueDate, now)
}

// DeriveStatus: satu-satunya sumber kebenaran status tagihan.
func DeriveStatus(paid, amount float64, dueDate, now time.Time) string {
	switch {
	case amount > 0 && paid >= amount:
		return financeModel.FeeStatusPaid
	case paid > 0:
		return financeModel.FeeStatusPartial
	case now.After(dueDate):
		return financeModel.FeeStatusOverdue
	default:
		return financeModel.FeeStatusPending
	}
}

// CreatePayment: validasi dulu, lalu satu transaksi atomik — payment +
// fee_payments + bump paid_amount/status tiap fee. Gagal = tidak ada baris.
func CreatePayment(db *gorm.DB, payment *financeModel.PaymentModel, allocs []Allocation) error {
	feeIDs := make([]uint, 0, len(allocs))
	for _, a := range allocs {
		feeIDs = append(feeIDs, a.StudentFeeID)
	}

	var fees []financeModel.StudentFeeModel
	if len(feeIDs) > 0 {
		if err := db.Where("id IN ?", feeIDs).Find(&fees).Error; err != nil {
			return err
		}
	}

	snaps := make([]FeeSnapshot, 0, len(fees))
	for _, f := range fees {
		snaps = append(snaps, FeeSnapshot{ID: f.ID, StudentID: f.StudentID,
			Amount: f.Amount, PaidAmount: f.PaidAmount})
	}
	if err := ValidateAllocations(payment.StudentID, payment.Amount, allocs, snaps); err != nil {
		return err
	}

	feeByID := make(map[uint]*financeModel.StudentFeeModel, len(fees))
	for i := range fees {
		feeByID[fees[i].ID] = &fees[i]
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		for _, a := range allocs {
			fp := financeModel.FeePaymentModel{
				PaymentID:    payment.ID,
				StudentFeeID: a.StudentFeeID,
				Amount:       a.Amount,
			}
			if err := tx.Create(&fp).Error; err != nil {
				return err
			}
			payment.FeePayments = append(payment.FeePayments, fp)

			fee := feeByID[a.StudentFeeID]
			newPaid, status := ApplyAllocation(fee.PaidAmount, fee.Amount, a.Amount)
			fee.PaidAmount = newPaid
			fee.Status = status
			if err := tx.Model(&financeModel.StudentFeeModel{}).
				Where("id = ?", fee.ID).
				Updates(map[string]any{"paid_amount": newPaid, "status": status}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePayment: balikin efek tiap alokasi lalu hapus payment — satu transaksi.
func DeletePayment(db *gorm.DB, paymentID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment financeModel.PaymentModel
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return err
		}

		var allocs []financeModel.FeePaymentModel
		if err := tx.Where("payment_id = ?", paymentID).Find(&allocs).Error; err != nil {
			return err
		}

		now := time.Now()
		for _, a := range allocs {
			var fee financeModel.StudentFeeModel
			if err := tx.First(&fee, a.StudentFeeID).Error; err != nil {
				return err
			}
			newPaid, status := ReverseAllocation(fee.PaidAmount, fee.Amount, a.Amount, fee.DueDate, now)
			if err := tx.Model(&financeModel.StudentFeeModel{}).
				Where("id = ?", fee.ID).
				Updates(map[string]any{"paid_amount": newPaid, "status": status}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("payment_id = ?", paymentID).
			Delete(&financeModel.FeePaymentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&financeModel.PaymentModel{}, paymentID).Error
	})
}
