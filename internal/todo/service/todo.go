package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
	"github.com/go-playground/validator/v10"
)

// InvalidStatusMessage is the reason given for an unknown status name.
var InvalidStatusMessage = func() string {
	names := make([]string, len(domain.TodoStatuses))
	for i, s := range domain.TodoStatuses {
		names[i] = string(s)
	}
	return "Invalid todo status value. Expected values (" + strings.Join(names, ", ") + ")"
}()

// TodoInput carries the caller-editable fields of a todo. Title is trimmed
// and required; both fields are length capped.
type TodoInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"max=2000"`
}

// TodoService runs todo CRUD on behalf of a caller, limited to the scope the
// AccessPolicy grants that caller.
type TodoService struct {
	Store  store.Store
	Policy *AccessPolicy

	validate *validator.Validate
}

// NewTodoService returns a TodoService backed by s.
func NewTodoService(s store.Store, policy *AccessPolicy) *TodoService {
	return &TodoService{Store: s, Policy: policy, validate: newValidator()}
}

// Create stores a new todo owned by callerID. New todos are always Pending.
func (s *TodoService) Create(ctx context.Context, callerID string, in TodoInput) (domain.Todo, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := s.validate.Struct(in); err != nil {
		return domain.Todo{}, invalid(nil, reasonsFor(err)...)
	}

	var created domain.Todo
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		created, err = tx.Todos().CreateTodo(ctx, domain.Todo{
			Title:       in.Title,
			Description: in.Description,
			Status:      domain.TodoPending,
			OwnerID:     callerID,
		})
		return err
	})
	if err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}
	return created, nil
}

// Get returns one todo. Todos outside the caller's scope are reported as
// ErrTodoNotFound, the same as ids that do not exist.
func (s *TodoService) Get(ctx context.Context, callerID string, id int64) (domain.Todo, error) {
	scope, err := s.Policy.ScopeFor(ctx, callerID)
	if err != nil {
		return domain.Todo{}, err
	}

	t, err := s.Store.Todos().GetTodo(ctx, id, scope)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, fmt.Errorf("get todo %d: %w", id, err)
	}
	if !scope.Allows(t) {
		return domain.Todo{}, ErrTodoNotFound
	}
	return t, nil
}

// List returns every todo for an admin and the caller's own todos otherwise.
func (s *TodoService) List(ctx context.Context, callerID string) ([]domain.Todo, error) {
	scope, err := s.Policy.ScopeFor(ctx, callerID)
	if err != nil {
		return nil, err
	}

	todos, err := s.Store.Todos().ListTodos(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return slices.DeleteFunc(todos, func(t domain.Todo) bool { return !scope.Allows(t) }), nil
}

// Update replaces title, description and status. The status name is checked
// before anything is written, and the owner never changes.
func (s *TodoService) Update(ctx context.Context, callerID string, id int64, in TodoInput, status string) (domain.Todo, error) {
	in.Title = strings.TrimSpace(in.Title)

	var reasons []string
	if err := s.validate.Struct(in); err != nil {
		reasons = reasonsFor(err)
	}
	st, statusErr := domain.ParseTodoStatus(strings.TrimSpace(status))
	if statusErr != nil {
		reasons = append(reasons, InvalidStatusMessage)
	}
	if len(reasons) > 0 {
		return domain.Todo{}, invalid(statusErr, reasons...)
	}

	scope, err := s.Policy.ScopeFor(ctx, callerID)
	if err != nil {
		return domain.Todo{}, err
	}

	var updated domain.Todo
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		updated, err = tx.Todos().UpdateTodo(ctx, domain.Todo{
			ID:          id,
			Title:       in.Title,
			Description: in.Description,
			Status:      st,
		}, scope)
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, fmt.Errorf("update todo %d: %w", id, err)
	}
	if !scope.Allows(updated) {
		return domain.Todo{}, ErrTodoNotFound
	}
	return updated, nil
}

// Delete removes a todo within the caller's scope. ErrTodoNotFound when
// nothing matched.
func (s *TodoService) Delete(ctx context.Context, callerID string, id int64) error {
	scope, err := s.Policy.ScopeFor(ctx, callerID)
	if err != nil {
		return err
	}

	var deleted bool
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = tx.Todos().DeleteTodo(ctx, id, scope)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	if !deleted {
		return ErrTodoNotFound
	}
	return nil
}
