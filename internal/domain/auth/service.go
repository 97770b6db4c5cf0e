package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"musicschool/internal/domain/user"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type userGetter interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Service contains authentication business logic
type Service struct {
	users userGetter
	jwt   jwtService
}

func NewService(users userGetter, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies credentials and issues an access token carrying the
// user's role.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Active {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		User:        user.ToPublic(u),
	}, nil
}
