package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"schoolku_backend/internals/configs"
	userModel "schoolku_backend/internals/features/users/user/model"
)

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	u := userModel.UserModel{ID: 7, SchoolID: 3, Username: "budi", Role: "teacher"}

	claims := BuildAccessClaims(u, now)

	if claims["user_id"] != float64(7) || claims["sub"] != float64(7) {
		t.Errorf("user_id/sub = %v/%v, want 7/7", claims["user_id"], claims["sub"])
	}
	if claims["school_id"] != float64(3) {
		t.Errorf("school_id = %v, want 3", claims["school_id"])
	}
	if claims["role"] != "teacher" || claims["username"] != "budi" {
		t.Errorf("role/username = %v/%v", claims["role"], claims["username"])
	}
	if claims["exp"] != now.Add(AccessTokenTTL).Unix() {
		t.Errorf("exp = %v, want %v", claims["exp"], now.Add(AccessTokenTTL).Unix())
	}
}

func TestSignAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	u := userModel.UserModel{ID: 42, SchoolID: 1, Username: "sari", Role: "admin"}
	signed, err := SignAccessToken(BuildAccessClaims(u, time.Now()))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tok, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v valid=%v", err, tok != nil && tok.Valid)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["user_id"] != float64(42) || claims["role"] != "admin" {
		t.Errorf("claims round trip = %v", claims)
	}
}

func TestSignAccessTokenMissingSecret(t *testing.T) {
	configs.JWTSecret = ""
	u := userModel.UserModel{ID: 1}
	if _, err := SignAccessToken(BuildAccessClaims(u, time.Now())); err != ErrMissingJWTSecret {
		t.Errorf("err = %v, want ErrMissingJWTSecret", err)
	}
}

func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-a", "secret-1")
	h2 := ComputeRefreshHash("token-a", "secret-1")
	if h1 != h2 {
		t.Error("same input must hash identically")
	}
	if h1 == ComputeRefreshHash("token-b", "secret-1") {
		t.Error("different tokens must hash differently")
	}
	if h1 == ComputeRefreshHash("token-a", "secret-2") {
		t.Error("different secrets must hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("hex sha256 length = %d, want 64", len(h1))
	}
}
