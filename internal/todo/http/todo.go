package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/todo/internal/todo/metrics"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

const (
	msgTodoNotFound = "Todo not found!"
	msgBadTodoID    = "Invalid todo id."
)

type TodoHandler struct {
	TodoService *service.TodoService
	Metrics     *metrics.Metrics
}

// caller returns the authenticated user id. The route is always behind
// AuthnMiddleware, so a missing id is a wiring bug.
func caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}

func todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Fail(w, http.StatusBadRequest, msgBadTodoID)
		return 0, false
	}
	return id, true
}

// HandleList godoc
//
//	@Summary		List todos
//	@Description	Admins receive every todo; other callers receive their own.
//	@Tags			Todo
//	@Produce		json
//	@Success		200	{object}	todosdk.Response[[]todosdk.Todo]
//	@Failure		401	{object}	todosdk.Response[any]
//	@Failure		500	{object}	todosdk.Response[any]
//	@Security		BearerAuth
//	@Router			/api/todo [get]
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}

	todos, err := h.TodoService.List(r.Context(), uid)
	if err != nil {
		slogx.FromContext(r.Context()).Error("list todos failed", "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "An error occurred while fetching todos.")
		return
	}
	httpx.OK(w, http.StatusOK, toTodoDTOs(todos), "Todo List!")
}

// HandleGet godoc
//
//	@Summary		Get a todo
//	@Description	Todos owned by someone else are reported as not found unless the caller is an Admin.
//	@Tags			Todo
//	@Produce		json
//	@Param			id	path		int	true	"Todo id"
//	@Success		200	{object}	todosdk.Response[todosdk.Todo]
//	@Failure		400	{object}	todosdk.Response[any]
//	@Failure		401	{object}	todosdk.Response[any]
//	@Failure		404	{object}	todosdk.Response[any]
//	@Failure		500	{object}	todosdk.Response[any]
//	@Security		BearerAuth
//	@Router			/api/todo/{id} [get]
func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.TodoService.Get(r.Context(), uid, id)
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		httpx.Fail(w, http.StatusNotFound, msgTodoNotFound)
	case err != nil:
		slogx.FromContext(r.Context()).Error("get todo failed", "todo_id", id, "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "An error occurred while fetching the todo.")
	default:
		httpx.OK(w, http.StatusOK, toTodoDTO(todo), "Todo information!")
	}
}

// HandleCreate godoc
//
//	@Summary		Create a todo
//	@Description	The caller becomes the owner. New todos always start as Pending.
//	@Tags			Todo
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.CreateTodoRequest	true	"Title and description"
//	@Success		201		{object}	todosdk.Response[todosdk.Todo]
//	@Failure		400		{object}	todosdk.Response[any]
//	@Failure		401		{object}	todosdk.Response[any]
//	@Failure		500		{object}	todosdk.Response[any]
//	@Security		BearerAuth
//	@Router			/api/todo [post]
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}

	var req todosdk.CreateTodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, msgBadBody)
		return
	}

	todo, err := h.TodoService.Create(r.Context(), uid, service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
	})

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Fail(w, http.StatusBadRequest, validationMessage(verr))
		return
	case err != nil:
		slogx.FromContext(r.Context()).Error("create todo failed", "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "An error occurred while creating the todo.")
		return
	}

	h.Metrics.RecordTodoOp("create")
	w.Header().Set("Location", "/api/todo/"+strconv.FormatInt(todo.ID, 10))
	httpx.OK(w, http.StatusCreated, toTodoDTO(todo), "Todo created successfully!")
}

// HandleUpdate godoc
//
//	@Summary		Update a todo
//	@Description	Replaces title, description and status. Status names are matched ignoring case. The owner never changes.
//	@Tags			Todo
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Todo id"
//	@Param			request	body		todosdk.UpdateTodoRequest	true	"New values"
//	@Success		200		{object}	todosdk.Response[todosdk.Todo]
//	@Failure		400		{object}	todosdk.Response[any]	"Validation failed or unknown status"
//	@Failure		401		{object}	todosdk.Response[any]
//	@Failure		404		{object}	todosdk.Response[any]
//	@Failure		500		{object}	todosdk.Response[any]
//	@Security		BearerAuth
//	@Router			/api/todo/{id} [put]
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var req todosdk.UpdateTodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, msgBadBody)
		return
	}

	todo, err := h.TodoService.Update(r.Context(), uid, id, service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
	}, req.Status)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Fail(w, http.StatusBadRequest, validationMessage(verr))
	case errors.Is(err, service.ErrTodoNotFound):
		httpx.Fail(w, http.StatusNotFound, msgTodoNotFound)
	case err != nil:
		slogx.FromContext(r.Context()).Error("update todo failed", "todo_id", id, "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "An error occurred while updating the todo.")
	default:
		h.Metrics.RecordTodoOp("update")
		httpx.OK(w, http.StatusOK, toTodoDTO(todo), "Todo updated successfully!")
	}
}

// HandleDelete godoc
//
//	@Summary		Delete a todo
//	@Tags			Todo
//	@Produce		json
//	@Param			id	path	int	true	"Todo id"
//	@Success		204
//	@Failure		400	{object}	todosdk.Response[any]
//	@Failure		401	{object}	todosdk.Response[any]
//	@Failure		404	{object}	todosdk.Response[any]
//	@Failure		500	{object}	todosdk.Response[any]
//	@Security		BearerAuth
//	@Router			/api/todo/{id} [delete]
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	err := h.TodoService.Delete(r.Context(), uid, id)
	switch {
	case errors.Is(err, service.ErrTodoNotFound):
		httpx.Fail(w, http.StatusNotFound, msgTodoNotFound)
	case err != nil:
		slogx.FromContext(r.Context()).Error("delete todo failed", "todo_id", id, "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "An error occurred while deleting the todo.")
	default:
		h.Metrics.RecordTodoOp("delete")
		w.WriteHeader(http.StatusNoContent)
	}
}
