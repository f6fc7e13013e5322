package dto

import (
	"time"

	"schoolku_backend/internals/features/people/model"
)

type ParentRequest struct {
	SchoolID uint    `json:"school_id" validate:"required,min=1"`
	Username string  `json:"username" validate:"required,min=3,max=60,alphanum"`
	Name     string  `json:"name" validate:"required,max=100"`
	Surname  string  `json:"surname" validate:"required,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Address  string  `json:"address" validate:"max=255"`
}

type ParentResponse struct {
	ID        uint              `json:"id"`
	SchoolID  uint              `json:"school_id"`
	Username  string            `json:"username"`
	Name      string            `json:"name"`
	Surname   string            `json:"surname"`
	Email     *string           `json:"email,omitempty"`
	Phone     *string           `json:"phone,omitempty"`
	Address   string            `json:"address"`
	Students  []StudentResponse `json:"students,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (r *ParentRequest) ToModel() model.ParentModel {
	m := model.ParentModel{}
	r.ApplyToModel(&m)
	return m
}

func (r *ParentRequest) ApplyToModel(m *model.ParentModel) {
	m.SchoolID = r.SchoolID
	m.Username = r.Username
	m.Name = r.Name
	m.Surname = r.Surname
	m.Email = r.Email
	m.Phone = r.Phone
	m.Address = r.Address
}

func ToParentResponse(m model.ParentModel, students []model.StudentModel) ParentResponse {
	return ParentResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Username:  m.Username,
		Name:      m.Name,
		Surname:   m.Surname,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Students:  ToStudentResponses(students),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToParentResponses(ms []model.ParentModel) []ParentResponse {
	out := make([]ParentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToParentResponse(m, nil))
	}
	return out
}
