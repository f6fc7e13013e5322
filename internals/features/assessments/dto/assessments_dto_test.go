package dto

import "testing"

func uintPtr(v uint) *uint { return &v }

func TestResultRequestCheckTarget(t *testing.T) {
	tests := []struct {
		name    string
		exam    *uint
		assign  *uint
		wantErr bool
	}{
		{"exam only", uintPtr(1), nil, false},
		{"assignment only", nil, uintPtr(2), false},
		{"both set", uintPtr(1), uintPtr(2), true},
		{"neither set", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResultRequest{SchoolID: 1, Score: 80, StudentID: 5,
				ExamID: tt.exam, AssignmentID: tt.assign}
			err := r.CheckTarget()
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckTarget() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
