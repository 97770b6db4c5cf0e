package user

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=admin staff teacher student"`
}

type UpdateUserRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2"`
	Phone string `json:"phone,omitempty"`
}

type UserPublic struct {
	ID     int64  `json:"id"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Active bool   `json:"active"`
}

// UserListResponse represents paginated list
type UserListResponse struct {
	Users []UserPublic `json:"users"`
	Total int          `json:"total"`
}

func ToPublic(u *User) UserPublic {
	return UserPublic{
		ID:     u.ID,
		Role:   u.Role,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Active: u.Active,
	}
}
