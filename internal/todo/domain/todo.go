package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// TodoStatus is the lifecycle state of a todo, stored as its name.
type TodoStatus string

const (
	TodoPending    TodoStatus = "Pending"
	TodoCompleted  TodoStatus = "Completed"
	TodoInProgress TodoStatus = "InProgress"
	TodoOverdue    TodoStatus = "Overdue"
	TodoCancelled  TodoStatus = "Cancelled"
)

// TodoStatuses lists every status in declaration order.
var TodoStatuses = []TodoStatus{TodoPending, TodoCompleted, TodoInProgress, TodoOverdue, TodoCancelled}

var ErrInvalidStatus = errors.New("invalid todo status")

// ParseTodoStatus maps a status name, ignoring case, to its TodoStatus.
func ParseTodoStatus(s string) (TodoStatus, error) {
	for _, st := range TodoStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is exactly one of the canonical names.
func (s TodoStatus) Valid() bool { return slices.Contains(TodoStatuses, s) }

func (s TodoStatus) String() string { return string(s) }

// Todo is a task owned by the user who created it.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Status      TodoStatus
	OwnerID     string // set at creation, never changed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Scope is the set of todos a caller may see or change. The zero value
// matches nothing.
type Scope struct {
	all     bool
	ownerID string
}

// AllTodos is the admin scope.
func AllTodos() Scope { return Scope{all: true} }

// OwnedBy restricts to todos whose owner is userID.
func OwnedBy(userID string) Scope { return Scope{ownerID: userID} }

// ScopeFor picks the scope for a caller.
func ScopeFor(callerID string, isAdmin bool) Scope {
	if isAdmin {
		return AllTodos()
	}
	return OwnedBy(callerID)
}

// All reports whether the scope is unrestricted.
func (s Scope) All() bool { return s.all }

// OwnerID is the owner filter; empty for AllTodos.
func (s Scope) OwnerID() string { return s.ownerID }

// Allows reports whether t falls inside the scope.
func (s Scope) Allows(t Todo) bool {
	if s.all {
		return true
	}
	return s.ownerID != "" && t.OwnerID == s.ownerID
}
