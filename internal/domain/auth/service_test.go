package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"musicschool/internal/domain/user"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func activeUser(password string) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return &user.User{
		ID:           1,
		Email:        "staff@school.io",
		PasswordHash: string(hash),
		Role:         user.RoleStaff,
		Active:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUsers)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "staff@school.io").Return(activeUser("secret-pass"), nil)
	jwt.On("GenerateToken", int64(1), "staff").Return("token-123", nil)

	res, err := svc.Login(context.Background(), LoginRequest{Email: "staff@school.io", Password: "secret-pass"})
	assert.NoError(t, err)
	assert.Equal(t, "token-123", res.AccessToken)
	assert.Equal(t, user.RoleStaff, res.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUsers)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "staff@school.io").Return(activeUser("secret-pass"), nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "staff@school.io", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken")
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mockUsers)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "nobody@school.io").Return(nil, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@school.io", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	users := new(mockUsers)
	jwt := new(mockJWT)
	svc := NewService(users, jwt)

	u := activeUser("secret-pass")
	u.Active = false
	users.On("GetByEmail", mock.Anything, "staff@school.io").Return(u, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "staff@school.io", Password: "secret-pass"})
	assert.ErrorIs(t, err, ErrUserInactive)
}
