package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	peopleModel "schoolku_backend/internals/features/people/model"
	schoolModel "schoolku_backend/internals/features/schools/model"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

var validateAuth = validator.New()

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	ident := strings.ToLower(strings.TrimSpace(req.Identifier))
	var usr userModel.UserModel
	err := h.DB.
		Where("school_id = ? AND (LOWER(username) = ? OR LOWER(email) = ?)", req.SchoolID, ident, ident).
		First(&usr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
		}
		return helper.JsonDBError(c, err, "")
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}
	if !usr.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	now := time.Now().UTC()
	usr.LastLoginAt = &now
	if err := h.DB.Model(&usr).Update("last_login_at", &now).Error; err != nil {
		log.Printf("[WARN] update last_login_at: %v", err)
	}

	access, err := authService.IssueTokens(h.DB, c, usr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: access,
		User:        authDTO.ToUserResponse(usr),
	})
}

// ===================== REGISTER =====================
// POST /api/auth/register — bikin akun admin untuk school yang sudah ada
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var school schoolModel.SchoolModel
	if err := h.DB.First(&school, req.SchoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonDBError(c, err, "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	usr := userModel.UserModel{
		SchoolID:     req.SchoolID,
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		IsActive:     true,
	}
	if err := h.DB.Create(&usr).Error; err != nil {
		return helper.JsonDBError(c, err, "Username or email already exists for this school")
	}
	return helper.JsonCreated(c, "Account registered", authDTO.ToUserResponse(usr))
}

// ===================== CREATE ACCOUNT =====================
// POST /api/auth/create-account — admin bikin akun untuk person yang sudah ada
func (h *AuthController) CreateAccount(c *fiber.Ctx) error {
	var req authDTO.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	// role ↔ person FK harus konsisten (admin tanpa person)
	if err := h.checkPersonLink(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// person harus milik school yang sama & belum punya akun
	if msg, status := h.verifyPersonOwnership(&req); msg != "" {
		return helper.JsonError(c, status, msg)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	usr := userModel.UserModel{
		SchoolID:     req.SchoolID,
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         req.Role,
		TeacherID:    req.TeacherID,
		StudentID:    req.StudentID,
		ParentID:     req.ParentID,
		IsActive:     true,
	}
	if err := h.DB.Create(&usr).Error; err != nil {
		return helper.JsonDBError(c, err, "Username or email already exists for this school")
	}
	return helper.JsonCreated(c, "Account created", authDTO.ToUserResponse(usr))
}

func (h *AuthController) checkPersonLink(req *authDTO.CreateAccountRequest) error {
	links := 0
	if req.TeacherID != nil {
		links++
	}
	if req.StudentID != nil {
		links++
	}
	if req.ParentID != nil {
		links++
	}

	switch req.Role {
	case constants.RoleAdmin:
		if links != 0 {
			return errors.New("admin accounts cannot be linked to a person record")
		}
	case constants.RoleTeacher:
		if req.TeacherID == nil || links != 1 {
			return errors.New("teacher accounts require exactly teacher_id")
		}
	case constants.RoleStudent:
		if req.StudentID == nil || links != 1 {
			return errors.New("student accounts require exactly student_id")
		}
	case constants.RoleParent:
		if req.ParentID == nil || links != 1 {
			return errors.New("parent accounts require exactly parent_id")
		}
	}
	return nil
}

func (h *AuthController) verifyPersonOwnership(req *authDTO.CreateAccountRequest) (string, int) {
	type probe struct {
		id     *uint
		find   func(id uint) error
		taken  func(id uint) (bool, error)
		label  string
		column string
	}

	countTaken := func(column string, id uint) (bool, error) {
		var n int64
		err := h.DB.Model(&userModel.UserModel{}).Where(column+" = ?", id).Count(&n).Error
		return n > 0, err
	}

	probes := []probe{
		{req.TeacherID, func(id uint) error {
			return h.DB.Where("id = ? AND school_id = ?", id, req.SchoolID).First(&peopleModel.TeacherModel{}).Error
		}, func(id uint) (bool, error) { return countTaken("teacher_id", id) }, "Teacher", "teacher_id"},
		{req.StudentID, func(id uint) error {
			return h.DB.Where("id = ? AND school_id = ?", id, req.SchoolID).First(&peopleModel.StudentModel{}).Error
		}, func(id uint) (bool, error) { return countTaken("student_id", id) }, "Student", "student_id"},
		{req.ParentID, func(id uint) error {
			return h.DB.Where("id = ? AND school_id = ?", id, req.SchoolID).First(&peopleModel.ParentModel{}).Error
		}, func(id uint) (bool, error) { return countTaken("parent_id", id) }, "Parent", "parent_id"},
	}

	for _, p := range probes {
		if p.id == nil {
			continue
		}
		if err := p.find(*p.id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return p.label + " not found for this school", fiber.StatusNotFound
			}
			return err.Error(), fiber.StatusInternalServerError
		}
		taken, err := p.taken(*p.id)
		if err != nil {
			return err.Error(), fiber.StatusInternalServerError
		}
		if taken {
			return p.label + " already has an account", fiber.StatusConflict
		}
	}
	return "", 0
}

// ===================== GOOGLE LOGIN =====================
// POST /api/auth/google — verifikasi ID token lalu login user dengan email yang cocok
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.JsonValidatorError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Google login belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token invalid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token invalid")
	}

	var usr userModel.UserModel
	err = h.DB.
		Where("school_id = ? AND LOWER(email) = ?", req.SchoolID, strings.ToLower(claimSet.Email)).
		First(&usr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No account for this Google email")
		}
		return helper.JsonDBError(c, err, "")
	}
	if !usr.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	now := time.Now().UTC()
	usr.LastLoginAt = &now
	_ = h.DB.Model(&usr).Update("last_login_at", &now).Error

	access, err := authService.IssueTokens(h.DB, c, usr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: access,
		User:        authDTO.ToUserResponse(usr),
	})
}

// ===================== REFRESH TOKEN =====================
// POST /api/auth/refresh-token
func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	_, userID, err := authService.RotateRefreshToken(h.DB, c, raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var usr userModel.UserModel
	if err := h.DB.First(&usr, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !usr.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	access, err := authService.IssueTokens(h.DB, c, usr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Token diperbarui", fiber.Map{"access_token": access})
}

// ===================== LOGOUT =====================
// POST /api/auth/logout — blacklist access token + revoke semua refresh
func (h *AuthController) Logout(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	raw := helper.GetRawAccessToken(c)
	if err := authService.BlacklistToken(h.DB, raw, time.Now().Add(authService.AccessTokenTTL)); err != nil {
		log.Printf("[WARN] blacklist token: %v", err)
	}
	if err := authService.RevokeAllRefreshTokens(h.DB, userID); err != nil {
		log.Printf("[WARN] revoke refresh tokens: %v", err)
	}
	authService.ClearAuthCookies(c)

	return helper.JsonOK(c, "Logout berhasil", nil)
}
