package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"drumroast/internal/config"
	"drumroast/internal/domain/model"
	repo "drumroast/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 24 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type JwtAccessTokenDTO struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenVersion int    `json:"token_version"`
}

type AuthRegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthRegisterResponse struct {
	User UserDTO `json:"user"`
}

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthLoginResponse struct {
	User  UserDTO           `json:"user"`
	Token JwtAccessTokenDTO `json:"token"`
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	validator AuthValidator
}

// DI
func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, req AuthRegisterRequest) (AuthRegisterResponse, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, req.Email, req.Password); err != nil {
		return AuthRegisterResponse{}, err
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthRegisterResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(pwHash),
		Role:         model.RoleUser,
		TokenVersion: 0,
		IsActive:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		//validatorの重複チェックとinsertの間で競合したケース
		return AuthRegisterResponse{}, NewHTTPError(http.StatusConflict, "email already used")
	}

	return AuthRegisterResponse{User: toUserDTO(user)}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req AuthLoginRequest) (AuthLoginResponse, error) {
	if err := u.validator.ValidateLogin(ctx, req.Email, req.Password); err != nil {
		return AuthLoginResponse{}, err
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err == repo.ErrNotFound {
		//emailの存在は漏らさない
		return AuthLoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return AuthLoginResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return AuthLoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return AuthLoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := u.issueAccessToken(user)
	if err != nil {
		return AuthLoginResponse{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	//最終ログインは失敗しても致命ではない
	_ = u.users.UpdateLastLoginAt(ctx, user.ID)

	return AuthLoginResponse{
		User: toUserDTO(user),
		Token: JwtAccessTokenDTO{
			AccessToken:  token,
			ExpiresIn:    int(accessTokenTTL.Seconds()),
			TokenVersion: user.TokenVersion,
		},
	}, nil
}

// Logout はtoken_versionを+1して既発行トークンを全て無効化する。
func (u *AuthUsecase) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if _, err := u.users.BumpTokenVersion(ctx, userID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Me は現在のセッションのユーザーを返す。
func (u *AuthUsecase) Me(ctx context.Context, userID string) (UserDTO, error) {
	if userID == "" {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) issueAccessToken(user *model.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"tv":   user.TokenVersion,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func toUserDTO(user *model.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		IsActive: user.IsActive,
	}
}
