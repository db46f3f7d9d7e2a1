package todosdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session performs requests as one logged-in user. Safe for concurrent use.
type Session struct {
	client *Client
	token  string
	user   *User
}

func (s *Session) Token() string { return s.token }

// User returns the profile returned at login, or nil for NewSession(token, nil).
func (s *Session) User() *User { return s.user }

func (s *Session) ListTodos(ctx context.Context) ([]Todo, error) {
	resp, err := s.client.do(ctx, http.MethodGet, "/api/todo", s.token, nil)
	if err != nil {
		return nil, err
	}

	var env Response[[]Todo]
	if err := decodeEnvelope(resp, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *Session) GetTodo(ctx context.Context, id int64) (*Todo, error) {
	resp, err := s.client.do(ctx, http.MethodGet, todoPath(id), s.token, nil)
	if err != nil {
		return nil, err
	}

	var env Response[*Todo]
	if err := decodeEnvelope(resp, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *Session) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	resp, err := s.client.do(ctx, http.MethodPost, "/api/todo", s.token, req)
	if err != nil {
		return nil, err
	}

	var env Response[*Todo]
	if err := decodeEnvelope(resp, http.StatusCreated, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *Session) UpdateTodo(ctx context.Context, id int64, req UpdateTodoRequest) (*Todo, error) {
	resp, err := s.client.do(ctx, http.MethodPut, todoPath(id), s.token, req)
	if err != nil {
		return nil, err
	}

	var env Response[*Todo]
	if err := decodeEnvelope(resp, http.StatusOK, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (s *Session) DeleteTodo(ctx context.Context, id int64) error {
	resp, err := s.client.do(ctx, http.MethodDelete, todoPath(id), s.token, nil)
	if err != nil {
		return err
	}
	return expectNoContent(resp)
}

// AssignRole grants roleName to the user with email. Requires the Admin role.
func (s *Session) AssignRole(ctx context.Context, email, roleName string) error {
	resp, err := s.client.do(ctx, http.MethodPost, "/api/users/assign-role", s.token,
		AssignRoleRequest{Email: email, RoleName: roleName})
	if err != nil {
		return err
	}

	var env Response[any]
	return decodeEnvelope(resp, http.StatusOK, &env)
}

func todoPath(id int64) string { return fmt.Sprintf("/api/todo/%d", id) }
