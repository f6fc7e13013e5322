package dto

import (
	"time"

	"schoolku_backend/internals/features/people/model"
)

type StudentRequest struct {
	SchoolID  uint    `json:"school_id" validate:"required,min=1"`
	Username  string  `json:"username" validate:"required,min=3,max=60,alphanum"`
	Name      string  `json:"name" validate:"required,max=100"`
	Surname   string  `json:"surname" validate:"required,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Address   string  `json:"address" validate:"max=255"`
	Img       *string `json:"img" validate:"omitempty,url"`
	BloodType *string `json:"blood_type" validate:"omitempty,max=5"`
	Sex       string  `json:"sex" validate:"required,oneof=MALE FEMALE"`
	Birthday  string  `json:"birthday" validate:"required,datetime=2006-01-02"`
	ClassID   uint    `json:"class_id" validate:"required,min=1"`
	GradeID   uint    `json:"grade_id" validate:"required,min=1"`
	ParentID  *uint   `json:"parent_id" validate:"omitempty,min=1"`
}

type StudentResponse struct {
	ID        uint      `json:"id"`
	SchoolID  uint      `json:"school_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   string    `json:"address"`
	Img       *string   `json:"img,omitempty"`
	BloodType *string   `json:"blood_type,omitempty"`
	Sex       string    `json:"sex"`
	Birthday  string    `json:"birthday"`
	ClassID   uint      `json:"class_id"`
	GradeID   uint      `json:"grade_id"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *StudentRequest) ToModel() model.StudentModel {
	m := model.StudentModel{}
	r.ApplyToModel(&m)
	return m
}

func (r *StudentRequest) ApplyToModel(m *model.StudentModel) {
	m.SchoolID = r.SchoolID
	m.Username = r.Username
	m.Name = r.Name
	m.Surname = r.Surname
	m.Email = r.Email
	m.Phone = r.Phone
	m.Address = r.Address
	m.Img = r.Img
	m.BloodType = r.BloodType
	m.Sex = r.Sex
	if t, err := time.Parse("2006-01-02", r.Birthday); err == nil {
		m.Birthday = t
	}
	m.ClassID = r.ClassID
	m.GradeID = r.GradeID
	m.ParentID = r.ParentID
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Username:  m.Username,
		Name:      m.Name,
		Surname:   m.Surname,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Img:       m.Img,
		BloodType: m.BloodType,
		Sex:       m.Sex,
		Birthday:  m.Birthday.Format("2006-01-02"),
		ClassID:   m.ClassID,
		GradeID:   m.GradeID,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToStudentResponses(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
