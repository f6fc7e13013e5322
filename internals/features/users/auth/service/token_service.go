// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	authModel "schoolku_backend/internals/features/users/auth/model"
	userModel "schoolku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 1 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrMissingJWTSecret = errors.New("JWT secret belum diset")
)

// BuildAccessClaims menyusun klaim access token (dibaca middleware auth).
func BuildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       float64(u.ID),
		"user_id":   float64(u.ID),
		"username":  u.Username,
		"role":      u.Role,
		"school_id": float64(u.SchoolID),
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
}

func buildRefreshClaims(userID uint, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": float64(userID),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
}

func SignAccessToken(claims jwt.MapClaims) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingJWTSecret
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func signRefreshToken(claims jwt.MapClaims) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", ErrMissingJWTSecret
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
}

// ComputeRefreshHash: yang disimpan di DB hash-nya, bukan raw token.
func ComputeRefreshHash(raw, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// IssueTokens bikin access + refresh, simpan hash refresh, set cookie refresh.
func IssueTokens(db *gorm.DB, c *fiber.Ctx, u userModel.UserModel) (string, error) {
	now := time.Now().UTC()

	access, err := SignAccessToken(BuildAccessClaims(u, now))
	if err != nil {
		return "", err
	}
	refresh, err := signRefreshToken(buildRefreshClaims(u.ID, now))
	if err != nil {
		return "", err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	rt := authModel.RefreshTokenModel{
		UserID:    u.ID,
		Token:     ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		ExpiresAt: now.Add(RefreshTokenTTL),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}

	setRefreshCookie(c, refresh, now)
	// access token juga dicerminkan ke cookie buat route-protection middleware web
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(AccessTokenTTL),
		HTTPOnly: false,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return access, nil
}

// RotateRefreshToken validasi cookie refresh, hapus hash lama, terbitkan pasangan baru.
func RotateRefreshToken(db *gorm.DB, c *fiber.Ctx, rawRefresh string) (string, uint, error) {
	if configs.JWTRefreshSecret == "" {
		return "", 0, ErrMissingJWTSecret
	}

	tok, err := jwt.Parse(rawRefresh, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", 0, errors.New("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(float64)
	if sub <= 0 {
		return "", 0, errors.New("refresh token invalid")
	}
	userID := uint(sub)

	// pastikan hash refresh ada & masih aktif
	hash := ComputeRefreshHash(rawRefresh, configs.JWTRefreshSecret)
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("token = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, errors.New("refresh token tidak dikenal")
		}
		return "", 0, err
	}

	// ROTATE: hapus token lama
	if err := db.Delete(&authModel.RefreshTokenModel{}, "token = ?", hash).Error; err != nil {
		return "", 0, err
	}
	return hash, userID, nil
}

// RevokeAllRefreshTokens dipakai saat logout.
func RevokeAllRefreshTokens(db *gorm.DB, userID uint) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now).Error
}

// BlacklistToken masukin access token ke blacklist (dicek middleware tiap request).
func BlacklistToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	if raw == "" {
		return nil
	}
	return db.Create(&authModel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(RefreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearAuthCookies hapus cookie access/refresh saat logout.
func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  expired,
			HTTPOnly: true,
			Path:     "/",
		})
	}
}
