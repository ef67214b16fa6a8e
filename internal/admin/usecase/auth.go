package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"eva-assistant/internal/admin"
	"eva-assistant/internal/admin/repository"
	"eva-assistant/internal/model"
)

// dummyHash is a throwaway bcrypt hash compared against when the
// username does not exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (uc *implUseCase) Login(ctx context.Context, input admin.LoginInput) (admin.LoginOutput, error) {
	user, err := uc.users.GetByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrNotFound) {
		// Burn a bcrypt comparison anyway so missing and present
		// usernames take the same time.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(input.Password))
		return admin.LoginOutput{}, admin.ErrInvalidCredentials
	}
	if err != nil {
		uc.l.Errorf(ctx, "admin.Login: failed to load user: %v", err)
		return admin.LoginOutput{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return admin.LoginOutput{}, admin.ErrInvalidCredentials
	}

	token, err := uc.mintToken(user)
	if err != nil {
		uc.l.Errorf(ctx, "admin.Login: failed to sign token: %v", err)
		return admin.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "admin.Login: %s logged in", user.Username)
	return admin.LoginOutput{
		Token:     token,
		ExpiresIn: int64(uc.tokenTTL.Seconds()),
		Role:      user.Role,
	}, nil
}

func (uc *implUseCase) mintToken(user model.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(uc.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.secret)
}

// VerifyToken validates a bearer token and returns the caller's scope.
// The HTTP middleware uses it on every admin request.
func (uc *implUseCase) VerifyToken(tokenString string) (model.Scope, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return uc.secret, nil
	})
	if err != nil || !token.Valid {
		return model.Scope{}, admin.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Scope{}, admin.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return model.Scope{}, admin.ErrInvalidCredentials
	}

	return model.Scope{UserID: sub, Username: sub, Role: role}, nil
}
