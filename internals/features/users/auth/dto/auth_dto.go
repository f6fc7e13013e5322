package dto

import (
	"time"

	userModel "schoolku_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	// boleh username atau email
	Identifier string `json:"identifier" validate:"required,min=3"`
	Password   string `json:"password" validate:"required,min=6"`
	SchoolID   uint   `json:"school_id" validate:"required,min=1"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	SchoolID uint   `json:"school_id" validate:"required,min=1"`
}

// CreateAccountRequest dipakai admin buat bikin akun untuk person yang sudah ada.
// Tepat satu dari teacher_id/student_id/parent_id harus terisi, konsisten dengan role.
type CreateAccountRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=60,alphanum"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=admin teacher student parent"`
	SchoolID  uint   `json:"school_id" validate:"required,min=1"`
	TeacherID *uint  `json:"teacher_id,omitempty"`
	StudentID *uint  `json:"student_id,omitempty"`
	ParentID  *uint  `json:"parent_id,omitempty"`
}

type GoogleLoginRequest struct {
	IDToken  string `json:"id_token" validate:"required"`
	SchoolID uint   `json:"school_id" validate:"required,min=1"`
}

type UserResponse struct {
	ID          uint       `json:"id"`
	SchoolID    uint       `json:"school_id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	TeacherID   *uint      `json:"teacher_id,omitempty"`
	StudentID   *uint      `json:"student_id,omitempty"`
	ParentID    *uint      `json:"parent_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		SchoolID:    u.SchoolID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		TeacherID:   u.TeacherID,
		StudentID:   u.StudentID,
		ParentID:    u.ParentID,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func ToUserResponses(us []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, ToUserResponse(u))
	}
	return out
}
