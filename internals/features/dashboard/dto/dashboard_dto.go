package dto

import (
	activitiesDTO "schoolku_backend/internals/features/activities/dto"
	"schoolku_backend/internals/features/dashboard/service"
)

type CountsResponse struct {
	Teachers       int64 `json:"teachers"`
	Students       int64 `json:"students"`
	StudentsMale   int64 `json:"students_male"`
	StudentsFemale int64 `json:"students_female"`
	Parents        int64 `json:"parents"`
	Classes        int64 `json:"classes"`
}

type FinanceSnapshot struct {
	MonthDue       float64 `json:"month_due"`
	MonthPaid      float64 `json:"month_paid"`
	MonthRate      float64 `json:"month_collection_rate"`
	YearDue        float64 `json:"year_due"`
	YearPaid       float64 `json:"year_paid"`
	YearRate       float64 `json:"year_collection_rate"`
	OverdueCount   int64   `json:"overdue_count"`
	PendingCount   int64   `json:"pending_count"`
}

type DashboardResponse struct {
	Counts              CountsResponse                       `json:"counts"`
	UpcomingEvents      []activitiesDTO.EventResponse        `json:"upcoming_events"`
	RecentAnnouncements []activitiesDTO.AnnouncementResponse `json:"recent_announcements"`
	AttendanceRate      float64                              `json:"attendance_rate"`
	AttendanceByMonth   []service.MonthBucket                `json:"attendance_by_month"`
	Finance             FinanceSnapshot                      `json:"finance"`
	Holidays            []service.Holiday                    `json:"holidays"`
}
