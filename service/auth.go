package service

import (
	"Tweeter/config"
	"Tweeter/dao"
	"Tweeter/models"
	"Tweeter/pkg/jwt"
	"Tweeter/pkg/snowflake"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetUser(ctx context.Context, userID uint64) (*models.User, error)
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
}

// Register 注册用户，用户名重复返回 ErrUsernameTaken
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	exist, err := s.UsersRepo.IsUsernameExist(ctx, username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		Password: string(hash),
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册同名用户
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login 校验密码并签发 access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, jwt.TokenTypeAccess, s.Config.Jwt.TTL())
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

// Authenticate 解析 token 并确认用户仍然存在
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TokenTypeAccess, token)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, claims.UserID)
}

func (s *AuthService) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
