package dto

import (
	"time"

	"schoolku_backend/internals/features/activities/model"
)

/* ===============================
   Event
=================================*/

type EventRequest struct {
	SchoolID    uint   `json:"school_id" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	ClassID     *uint  `json:"class_id" validate:"omitempty,min=1"`
}

type EventResponse struct {
	ID          uint      `json:"id"`
	SchoolID    uint      `json:"school_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	ClassID     *uint     `json:"class_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *EventRequest) ApplyToModel(m *model.EventModel) error {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return err
	}
	m.SchoolID = r.SchoolID
	m.Title = r.Title
	m.Description = r.Description
	m.StartTime = start
	m.EndTime = end
	m.ClassID = r.ClassID
	return nil
}

func ToEventResponse(m model.EventModel) EventResponse {
	return EventResponse{ID: m.ID, SchoolID: m.SchoolID, Title: m.Title,
		Description: m.Description, StartTime: m.StartTime, EndTime: m.EndTime,
		ClassID: m.ClassID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToEventResponses(ms []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToEventResponse(m))
	}
	return out
}

/* ===============================
   Announcement
=================================*/

type AnnouncementRequest struct {
	SchoolID    uint   `json:"school_id" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	ClassID     *uint  `json:"class_id" validate:"omitempty,min=1"`
}

type AnnouncementResponse struct {
	ID          uint      `json:"id"`
	SchoolID    uint      `json:"school_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	ClassID     *uint     `json:"class_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *AnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	m.SchoolID = r.SchoolID
	m.Title = r.Title
	m.Description = r.Description
	if t, err := time.Parse("2006-01-02", r.Date); err == nil {
		m.Date = t
	}
	m.ClassID = r.ClassID
}

func ToAnnouncementResponse(m model.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{ID: m.ID, SchoolID: m.SchoolID, Title: m.Title,
		Description: m.Description, Date: m.Date.Format("2006-01-02"),
		ClassID: m.ClassID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

func ToAnnouncementResponses(ms []model.AnnouncementModel) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAnnouncementResponse(m))
	}
	return out
}
