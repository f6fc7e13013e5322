package service

import "testing"

func TestOrderIDRoundTrip(t *testing.T) {
	orderID := BuildOrderID(42, "a1b2c3d4")
	if orderID != "SF-42-a1b2c3d4" {
		t.Fatalf("BuildOrderID = %s", orderID)
	}
	id, ok := ParseOrderID(orderID)
	if !ok || id != 42 {
		t.Errorf("ParseOrderID(%s) = (%d, %v), want (42, true)", orderID, id, ok)
	}
}

func TestParseOrderID(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		wantID  uint
		wantOK  bool
	}{
		{"valid", "SF-9-xyz", 9, true},
		{"suffix with dashes", "SF-7-ab-cd", 7, true},
		{"no suffix", "SF-3", 3, true},
		{"wrong prefix", "DN-9-xyz", 0, false},
		{"non numeric id", "SF-abc-xyz", 0, false},
		{"zero id", "SF-0-xyz", 0, false},
		{"empty", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseOrderID(tt.orderID)
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("ParseOrderID(%q) = (%d, %v), want (%d, %v)",
					tt.orderID, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestIsSettled(t *testing.T) {
	tests := []struct {
		name        string
		txStatus    string
		fraudStatus string
		want        bool
	}{
		{"settlement", "settlement", "", true},
		{"capture accepted", "capture", "accept", true},
		{"capture challenged", "capture", "challenge", false},
		{"pending", "pending", "", false},
		{"deny", "deny", "", false},
		{"expire", "expire", "", false},
		{"cancel", "cancel", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSettled(tt.txStatus, tt.fraudStatus); got != tt.want {
				t.Errorf("IsSettled(%q, %q) = %v, want %v", tt.txStatus, tt.fraudStatus, got, tt.want)
			}
		})
	}
}
