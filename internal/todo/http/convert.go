package http

import (
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

func toUserDTO(u domain.User) *todosdk.User {
	return &todosdk.User{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Gender:      u.Gender,
		Age:         u.Age,
		PhoneNumber: u.PhoneNumber,
	}
}

func toTodoDTO(t domain.Todo) todosdk.Todo {
	return todosdk.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
}

func toTodoDTOs(ts []domain.Todo) []todosdk.Todo {
	out := make([]todosdk.Todo, len(ts))
	for i, t := range ts {
		out[i] = toTodoDTO(t)
	}
	return out
}

func validationMessage(verr *service.ValidationError) string {
	return strings.Join(verr.Reasons, " ")
}
