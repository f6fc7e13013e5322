package service

import (
	"errors"
	"testing"
	"time"

	financeModel "schoolku_backend/internals/features/finance/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	due := date(2026, 9, 30)
	now := date(2026, 9, 1)
	overdueNow := date(2026, 10, 1)

	tests := []struct {
		name   string
		paid   float64
		amount float64
		now    time.Time
		want   string
	}{
		{"unpaid before due", 0, 100, now, financeModel.FeeStatusPending},
		{"unpaid after due", 0, 100, overdueNow, financeModel.FeeStatusOverdue},
		{"partial before due", 40, 100, now, financeModel.FeeStatusPartial},
		{"partial after due still partial", 40, 100, overdueNow, financeModel.FeeStatusPartial},
		{"exactly paid", 100, 100, now, financeModel.FeeStatusPaid},
		{"overpaid counts as paid", 120, 100, now, financeModel.FeeStatusPaid},
		{"paid ignores due date", 100, 100, overdueNow, financeModel.FeeStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.paid, tt.amount, due, tt.now); got != tt.want {
				t.Errorf("DeriveStatus(%v, %v) = %s, want %s", tt.paid, tt.amount, got, tt.want)
			}
		})
	}
}

func TestApplyAllocation(t *testing.T) {
	tests := []struct {
		name       string
		paid       float64
		amount     float64
		alloc      float64
		wantPaid   float64
		wantStatus string
	}{
		{"first partial", 0, 100, 40, 40, financeModel.FeeStatusPartial},
		{"completes fee", 60, 100, 40, 100, financeModel.FeeStatusPaid},
		{"second partial", 20, 100, 30, 50, financeModel.FeeStatusPartial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPaid, gotStatus := ApplyAllocation(tt.paid, tt.amount, tt.alloc)
			if gotPaid != tt.wantPaid || gotStatus != tt.wantStatus {
				t.Errorf("ApplyAllocation = (%v, %s), want (%v, %s)",
					gotPaid, gotStatus, tt.wantPaid, tt.wantStatus)
			}
		})
	}
}

func TestReverseAllocationRoundTrip(t *testing.T) {
	// create-then-delete harus balik persis ke keadaan semula
	due := date(2026, 12, 31)
	now := date(2026, 9, 1)

	paid0, amount := 0.0, 100.0
	paid1, status1 := ApplyAllocation(paid0, amount, 60)
	if status1 != financeModel.FeeStatusPartial {
		t.Fatalf("after apply: status = %s, want PARTIAL", status1)
	}

	paid2, status2 := ReverseAllocation(paid1, amount, 60, due, now)
	if paid2 != paid0 {
		t.Errorf("round trip paid = %v, want %v", paid2, paid0)
	}
	if status2 != financeModel.FeeStatusPending {
		t.Errorf("round trip status = %s, want PENDING", status2)
	}
}

func TestReverseAllocation(t *testing.T) {
	due := date(2026, 6, 30)

	tests := []struct {
		name       string
		paid       float64
		amount     float64
		alloc      float64
		now        time.Time
		wantPaid   float64
		wantStatus string
	}{
		{"back to pending", 60, 100, 60, date(2026, 6, 1), 0, financeModel.FeeStatusPending},
		{"back to overdue after due", 60, 100, 60, date(2026, 7, 1), 0, financeModel.FeeStatusOverdue},
		{"stays partial", 80, 100, 30, date(2026, 6, 1), 50, financeModel.FeeStatusPartial},
		{"clamped at zero", 20, 100, 50, date(2026, 6, 1), 0, financeModel.FeeStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPaid, gotStatus := ReverseAllocation(tt.paid, tt.amount, tt.alloc, due, tt.now)
			if gotPaid != tt.wantPaid || gotStatus != tt.wantStatus {
				t.Errorf("ReverseAllocation = (%v, %s), want (%v, %s)",
					gotPaid, gotStatus, tt.wantPaid, tt.wantStatus)
			}
		})
	}
}

func TestValidateAllocations(t *testing.T) {
	fees := []FeeSnapshot{
		{ID: 9, StudentID: 5, Amount: 100, PaidAmount: 0},
		{ID: 10, StudentID: 5, Amount: 50, PaidAmount: 30},
		{ID: 11, StudentID: 7, Amount: 80, PaidAmount: 0},
	}

	tests := []struct {
		name      string
		studentID uint
		amount    float64
		allocs    []Allocation
		wantErr   string
	}{
		{"no allocations is fine", 5, 100, nil, ""},
		{"full allocation", 5, 100, []Allocation{{9, 100}}, ""},
		{"split across fees", 5, 100, []Allocation{{9, 80}, {10, 20}}, ""},
		{"partial allocation leaves remainder untracked", 5, 100, []Allocation{{9, 30}}, ""},
		{"alloc beyond payment amount wins over remaining check", 5, 100, []Allocation{{9, 120}},
			"Total allocated amount cannot exceed payment amount"},
		{"alloc within payment but beyond fee remainder", 5, 200, []Allocation{{9, 120}},
			"allocation exceeds remaining amount for student fee 9"},
		{"sum exceeds payment", 5, 100, []Allocation{{9, 90}, {10, 20}},
			"Total allocated amount cannot exceed payment amount"},
		{"wrong student", 5, 100, []Allocation{{11, 10}},
			"student fee 11 does not belong to this student"},
		{"unknown fee", 5, 100, []Allocation{{99, 10}}, "student fee 99 not found"},
		{"exceeds remaining after partial payment", 5, 100, []Allocation{{10, 30}},
			"allocation exceeds remaining amount for student fee 10"},
		{"zero allocation amount", 5, 100, []Allocation{{9, 0}},
			"allocation amount for student fee 9 must be positive"},
		{"duplicate allocations combined exceed remainder", 5, 200, []Allocation{{9, 60}, {9, 60}},
			"allocation exceeds remaining amount for student fee 9"},
		{"duplicate allocations within remainder", 5, 200, []Allocation{{9, 40}, {9, 40}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAllocations(tt.studentID, tt.amount, tt.allocs, fees)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSplitAllocationsToOneFeeKeepPaidWithinAmount(t *testing.T) {
	fees := []FeeSnapshot{{ID: 9, StudentID: 5, Amount: 100, PaidAmount: 0}}

	// gabungan dua alokasi melewati sisa tagihan — harus ditolak sebelum apply
	if err := ValidateAllocations(5, 200, []Allocation{{9, 60}, {9, 60}}, fees); err == nil {
		t.Fatal("expected error for combined allocations exceeding the fee amount")
	}

	// gabungan pas 100 sah; terapkan berurutan dan cek invariant paid ≤ amount
	allocs := []Allocation{{9, 50}, {9, 50}}
	if err := ValidateAllocations(5, 200, allocs, fees); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paid := fees[0].PaidAmount
	var status string
	for _, a := range allocs {
		paid, status = ApplyAllocation(paid, fees[0].Amount, a.Amount)
		if paid > fees[0].Amount {
			t.Fatalf("paid %v exceeds amount %v", paid, fees[0].Amount)
		}
	}
	if paid != 100 || status != financeModel.FeeStatusPaid {
		t.Errorf("final state = (%v, %s), want (100, PAID)", paid, status)
	}
}

func TestValidateAmountChange(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		paid    float64
		wantErr bool
	}{
		{"amount above paid", 150, 100, false},
		{"amount equals paid", 100, 100, false},
		{"nothing paid yet", 50, 0, false},
		{"amount below paid", 80, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmountChange(tt.amount, tt.paid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAmountChange(%v, %v) err = %v, wantErr %v",
					tt.amount, tt.paid, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrAmountBelowPaid) {
				t.Errorf("expected ErrAmountBelowPaid, got %v", err)
			}
		})
	}
}

func TestOverAllocatedSentinel(t *testing.T) {
	fees := []FeeSnapshot{{ID: 9, StudentID: 5, Amount: 200, PaidAmount: 0}}
	err := ValidateAllocations(5, 100, []Allocation{{9, 120}}, fees)
	if !errors.Is(err, ErrOverAllocated) {
		t.Errorf("expected ErrOverAllocated, got %v", err)
	}
}
