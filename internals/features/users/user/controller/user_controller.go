package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	peopleModel "schoolku_backend/internals/features/people/model"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	userDTO "schoolku_backend/internals/features/users/user/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type UserController struct{ DB *gorm.DB }

func NewUserController(db *gorm.DB) *UserController { return &UserController{DB: db} }

// ===================== ME =====================
// GET /api/auth/me — profil user dari token
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var usr userModel.UserModel
	if err := h.DB.First(&usr, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonDBError(c, err, "")
	}
	return helper.JsonOK(c, "OK", authDTO.ToUserResponse(usr))
}

// ===================== LIST =====================
// GET /api/auth/users?school_id=&role=&search=
func (h *UserController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{}).Where("school_id = ?", schoolID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	var users []userModel.UserModel
	if err := q.Order("username ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}

	return helper.JsonList(c, "ok", authDTO.ToUserResponses(users),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ===================== PEOPLE WITHOUT ACCOUNTS =====================
// GET /api/auth/people-without-accounts?school_id= — buat form create-account
func (h *UserController) PeopleWithoutAccounts(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	resp := userDTO.PeopleWithoutAccountsResponse{
		Teachers: []userDTO.PersonOption{},
		Students: []userDTO.PersonOption{},
		Parents:  []userDTO.PersonOption{},
	}

	var teachers []peopleModel.TeacherModel
	if err := h.DB.
		Where("school_id = ? AND id NOT IN (?)", schoolID,
			h.DB.Model(&userModel.UserModel{}).Select("teacher_id").Where("teacher_id IS NOT NULL")).
		Order("name ASC").Find(&teachers).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	for _, t := range teachers {
		resp.Teachers = append(resp.Teachers, userDTO.PersonOption{ID: t.ID, Name: t.Name})
	}

	var students []peopleModel.StudentModel
	if err := h.DB.
		Where("school_id = ? AND id NOT IN (?)", schoolID,
			h.DB.Model(&userModel.UserModel{}).Select("student_id").Where("student_id IS NOT NULL")).
		Order("name ASC").Find(&students).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	for _, s := range students {
		resp.Students = append(resp.Students, userDTO.PersonOption{ID: s.ID, Name: s.Name})
	}

	var parents []peopleModel.ParentModel
	if err := h.DB.
		Where("school_id = ? AND id NOT IN (?)", schoolID,
			h.DB.Model(&userModel.UserModel{}).Select("parent_id").Where("parent_id IS NOT NULL")).
		Order("name ASC").Find(&parents).Error; err != nil {
		return helper.JsonDBError(c, err, "")
	}
	for _, p := range parents {
		resp.Parents = append(resp.Parents, userDTO.PersonOption{ID: p.ID, Name: p.Name})
	}

	return helper.JsonOK(c, "OK", resp)
}
