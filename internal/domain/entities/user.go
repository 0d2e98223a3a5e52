package entities

import "github.com/volatiletech/null/v8"

// User represents an insurance customer
type User struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email null.String `json:"email"`
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// UpdateUserInput represents input for a partial user update
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
