package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/auth"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/apperror"
	"gorm.io/gorm"
)

type AuthService interface {
	IssueToken(ctx context.Context, email string) (*dto.IssueTokenResponse, error)
}

type authService struct {
	repo     repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(repo repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		repo:     repo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// IssueToken stamps the user's current stored role into a fresh token.
// Unknown emails get the default student role rather than an error.
func (s *authService) IssueToken(ctx context.Context, email string) (*dto.IssueTokenResponse, error) {
	role := model.RoleStudent

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
		}
	} else {
		role = user.Role
	}

	token, err := auth.Issue(email, role, s.secret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.IssueTokenResponse{Token: token, Role: role}, nil
}
