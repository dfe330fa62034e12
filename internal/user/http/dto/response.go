package dto

import (
	"github.com/allisson/mailadmin/internal/user/domain"
)

// UserResponse is one administrative account.
type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

// ListUsersResponse holds a list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// MapUserToResponse converts a user to its response form.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
	}
}

// MapUsersToListResponse converts a slice of users to the list response.
func MapUsersToListResponse(users []*domain.User) ListUsersResponse {
	response := ListUsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		response.Users = append(response.Users, MapUserToResponse(user))
	}
	return response
}
