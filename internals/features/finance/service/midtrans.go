package service

import (
	"fmt"
	"strconv"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	financeModel "schoolku_backend/internals/features/finance/model"
)

var SnapClient snap.Client

// InitMidtrans inisialisasi Snap client dengan server key (sandbox).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// BuildOrderID format order id checkout satu student fee.
func BuildOrderID(studentFeeID uint, suffix string) string {
	return fmt.Sprintf("SF-%d-%s", studentFeeID, suffix)
}

// ParseOrderID baca student fee id dari format "SF-<id>-<suffix>".
func ParseOrderID(orderID string) (uint, bool) {
	parts := strings.SplitN(orderID, "-", 3)
	if len(parts) < 2 || parts[0] != "SF" {
		return 0, false
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// IsSettled: dana sudah masuk — settlement, atau capture yang lolos fraud check.
func IsSettled(transactionStatus, fraudStatus string) bool {
	return transactionStatus == "settlement" ||
		(transactionStatus == "capture" && fraudStatus == "accept")
}

// GenerateSnapToken bikin transaksi Snap untuk sisa tagihan student fee.
func GenerateSnapToken(orderID string, fee financeModel.StudentFeeModel, name, email string) (string, string, error) {
	outstanding := fee.Amount - fee.PaidAmount
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(outstanding),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
