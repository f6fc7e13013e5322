package dto

import (
	"time"

	"schoolku_backend/internals/features/schools/model"
)

// Create & Update (PUT = full replace field yang editable)
type SchoolRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=120"`
	Address  string `json:"address" validate:"max=255"`
	City     string `json:"city" validate:"max=100"`
	Country  string `json:"country" validate:"max=100"`
	Timezone string `json:"timezone" validate:"omitempty,max=64"`
	Phone    string `json:"phone" validate:"max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type SchoolResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Timezone  string    `json:"timezone"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *SchoolRequest) ToModel() model.SchoolModel {
	m := model.SchoolModel{}
	r.ApplyToModel(&m)
	return m
}

// ApplyToModel buat PUT full replace (ID & timestamps tidak disentuh)
func (r *SchoolRequest) ApplyToModel(m *model.SchoolModel) {
	m.Name = r.Name
	m.Address = r.Address
	m.City = r.City
	m.Country = r.Country
	m.Timezone = r.Timezone
	m.Phone = r.Phone
	m.Email = r.Email
	if m.Country == "" {
		m.Country = "Indonesia"
	}
	if m.Timezone == "" {
		m.Timezone = "Asia/Jakarta"
	}
}

func ToSchoolResponse(m model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		Country:   m.Country,
		Timezone:  m.Timezone,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSchoolResponses(ms []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSchoolResponse(m))
	}
	return out
}
