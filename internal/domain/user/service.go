package user

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Service handles user management business logic. Every operation takes the
// acting role explicitly; callers resolve session -> role before calling.
type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// List returns user records of the given classification, if the actor's
// tier may see them.
func (s *Service) List(ctx context.Context, actor Role, managed Role, limit, offset int) ([]*User, int, error) {
	if !ValidManagedRole(managed) {
		return nil, 0, ErrInvalidRole
	}
	if !CanViewUserList(actor, managed) {
		return nil, 0, ErrForbidden
	}
	return s.repo.ListByRole(ctx, managed, limit, offset)
}

// Get returns a single user record. Visible when the actor's tier may list
// records of the target's classification, or when the target is the actor's
// own tier and record.
func (s *Service) Get(ctx context.Context, actor Role, actorID, id int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if CanViewUserList(actor, u.Role) {
		return u, nil
	}
	if actorID == id && CanViewOwnProfile(actor, u.Role) {
		return u, nil
	}
	return nil, ErrForbidden
}

// Profile returns the actor's own record.
func (s *Service) Profile(ctx context.Context, actorID int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Create creates a user record with the requested classification.
func (s *Service) Create(ctx context.Context, actor Role, req CreateUserRequest) (*User, error) {
	if !ValidManagedRole(req.Role) {
		return nil, ErrInvalidRole
	}
	if !CanManageUsers(actor, req.Role) {
		return nil, ErrForbidden
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Name:         req.Name,
		Phone:        req.Phone,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Update edits name/phone of a user record the actor may manage.
func (s *Service) Update(ctx context.Context, actor Role, id int64, req UpdateUserRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !CanManageUsers(actor, u.Role) {
		return nil, ErrForbidden
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Deactivate disables a user record the actor may manage.
func (s *Service) Deactivate(ctx context.Context, actor Role, id int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if !CanManageUsers(actor, u.Role) {
		return ErrForbidden
	}
	return s.repo.SetActive(ctx, id, false)
}
