package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsModel "schoolku_backend/internals/features/academics/model"
	activitiesDTO "schoolku_backend/internals/features/activities/dto"
	activitiesModel "schoolku_backend/internals/features/activities/model"
	attendanceModel "schoolku_backend/internals/features/attendance/model"
	dashboardDTO "schoolku_backend/internals/features/dashboard/dto"
	dashboardService "schoolku_backend/internals/features/dashboard/service"
	financeModel "schoolku_backend/internals/features/finance/model"
	peopleModel "schoolku_backend/internals/features/people/model"
	schoolModel "schoolku_backend/internals/features/schools/model"
	helper "schoolku_backend/internals/helpers"
)

type DashboardController struct{ DB *gorm.DB }

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// ===================== SNAPSHOT =====================
// GET /api/a/dashboard?school_id= — baca-saja, dihitung ulang tiap panggilan
func (h *DashboardController) Snapshot(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var school schoolModel.SchoolModel
	if err := h.DB.First(&school, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	loc, err := time.LoadLocation(school.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now := time.Now()

	// --- counts ---
	var counts dashboardDTO.CountsResponse
	countQueries := []struct {
		dst  *int64
		base *gorm.DB
	}{
		{&counts.Teachers, h.DB.Model(&peopleModel.TeacherModel{}).Where("school_id = ?", schoolID)},
		{&counts.Students, h.DB.Model(&peopleModel.StudentModel{}).Where("school_id = ?", schoolID)},
		{&counts.StudentsMale, h.DB.Model(&peopleModel.StudentModel{}).Where("school_id = ? AND sex = ?", schoolID, "MALE")},
		{&counts.StudentsFemale, h.DB.Model(&peopleModel.StudentModel{}).Where("school_id = ? AND sex = ?", schoolID, "FEMALE")},
		{&counts.Parents, h.DB.Model(&peopleModel.ParentModel{}).Where("school_id = ?", schoolID)},
		{&counts.Classes, h.DB.Model(&academicsModel.ClassModel{}).Where("school_id = ?", schoolID)},
	}
	for _, q := range countQueries {
		if err := q.base.Count(q.dst).Error; err != nil {
			return helper.JsonDBError(c, err, "")
		}
	}

	// --- upcoming events (5 terdekat) ---
	var events []activitiesModel.EventModel
	if err := h.DB.Where("school_id = ? AND start_time >= ?", schoolID, now).
		Order("start_time asc").Limit(5).Find(&events).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	// --- recent announcements (5 terbaru) ---
	var announcements []activitiesModel.AnnouncementModel
	if err := h.DB.Where("school_id = ?", schoolID).
		Order("date desc, id desc").Limit(5).Find(&announcements).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	// --- attendance: jendela 4 bulan kalender di timezone sekolah ---
	windowStart := dashboardService.WindowStart(now, loc)
	var attendanceRows []attendanceModel.AttendanceModel
	if err := h.DB.Where("school_id = ? AND date >= ?", schoolID, windowStart).
		Find(&attendanceRows).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	days := make([]dashboardService.AttendanceDay, 0, len(attendanceRows))
	var presentTotal, total int64
	for _, r := range attendanceRows {
		days = append(days, dashboardService.AttendanceDay{Date: r.Date, Present: r.Present})
		total++
		if r.Present {
			presentTotal++
		}
	}
	buckets := dashboardService.BucketAttendance(days,
		dashboardService.MonthWindow(now, loc), loc)

	// --- fee aggregates bulan/tahun berjalan ---
	local := now.In(loc)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(local.Year(), 1, 1, 0, 0, 0, 0, loc)
	yearEnd := yearStart.AddDate(1, 0, 0)

	type sums struct {
		Due  float64
		Paid float64
	}
	var monthSums, yearSums sums
	if err := h.DB.Model(&financeModel.StudentFeeModel{}).
		Select("COALESCE(SUM(amount),0) AS due, COALESCE(SUM(paid_amount),0) AS paid").
		Where("school_id = ? AND due_date >= ? AND due_date < ?", schoolID, monthStart, monthEnd).
		Scan(&monthSums).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	if err := h.DB.Model(&financeModel.StudentFeeModel{}).
		Select("COALESCE(SUM(amount),0) AS due, COALESCE(SUM(paid_amount),0) AS paid").
		Where("school_id = ? AND due_date >= ? AND due_date < ?", schoolID, yearStart, yearEnd).
		Scan(&yearSums).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var overdueCount, pendingCount int64
	if err := h.DB.Model(&financeModel.StudentFeeModel{}).
		Where("school_id = ? AND status = ?", schoolID, financeModel.FeeStatusOverdue).
		Count(&overdueCount).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	if err := h.DB.Model(&financeModel.StudentFeeModel{}).
		Where("school_id = ? AND status = ?", schoolID, financeModel.FeeStatusPending).
		Count(&pendingCount).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	resp := dashboardDTO.DashboardResponse{
		Counts:              counts,
		UpcomingEvents:      activitiesDTO.ToEventResponses(events),
		RecentAnnouncements: activitiesDTO.ToAnnouncementResponses(announcements),
		AttendanceRate:      dashboardService.Rate(presentTotal, total),
		AttendanceByMonth:   buckets,
		Finance: dashboardDTO.FinanceSnapshot{
			MonthDue:     monthSums.Due,
			MonthPaid:    monthSums.Paid,
			MonthRate:    dashboardService.CollectionRate(monthSums.Paid, monthSums.Due),
			YearDue:      yearSums.Due,
			YearPaid:     yearSums.Paid,
			YearRate:     dashboardService.CollectionRate(yearSums.Paid, yearSums.Due),
			OverdueCount: overdueCount,
			PendingCount: pendingCount,
		},
		Holidays: dashboardService.HolidaysFor(school.Country, local.Year(), loc),
	}
	return helper.JsonOK(c, "ok", resp)
}
