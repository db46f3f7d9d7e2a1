package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/metrics"
	"github.com/aussiebroadwan/todo/internal/todo/service"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/slogx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

const (
	msgBadBody        = "Invalid request body."
	msgBadCredentials = "Email and password combination is incorrect!!"
)

type UsersHandler struct {
	UserService *service.UserService
	Metrics     *metrics.Metrics
}

// HandleRegister godoc
//
//	@Summary		Register a user
//	@Description	Creates an account and grants it the Default role. Every validation problem is reported in the message.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.RegisterRequest	true	"Profile and credentials"
//	@Success		200		{object}	todosdk.Response[todosdk.User]
//	@Failure		400		{object}	todosdk.Response[any]	"Validation failed or email taken"
//	@Failure		429		{object}	todosdk.Response[any]
//	@Failure		500		{object}	todosdk.Response[any]
//	@Router			/api/users/register [post]
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, msgBadBody)
		return
	}

	user, err := h.UserService.Register(ctx, service.Registration{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Age:         req.Age,
	})

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Fail(w, http.StatusBadRequest, validationMessage(verr))
		return
	case err != nil:
		log.Error("register failed", "error", err)
		httpx.Fail(w, http.StatusInternalServerError, httpx.InternalErrorMessage)
		return
	}

	h.Metrics.RecordRegistration()
	httpx.OK(w, http.StatusOK, toUserDTO(user), "User successfully registered!")
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token valid for 24 hours.
//	@Description	Unknown email and wrong password produce the same response.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	todosdk.Response[todosdk.LoginResponse]
//	@Failure		401		{object}	todosdk.Response[any]
//	@Failure		429		{object}	todosdk.Response[any]
//	@Router			/api/users/login [post]
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req todosdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, msgBadBody)
		return
	}

	res, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.Metrics.RecordLogin(false)
		httpx.Fail(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	h.Metrics.RecordLogin(true)
	slogx.FromContext(ctx).Info("login succeeded", "user_id", res.User.ID)
	httpx.OK(w, http.StatusOK, todosdk.LoginResponse{
		User:  toUserDTO(res.User),
		Token: res.Token,
	}, "Login successful!")
}

// HandleAssignRole godoc
//
//	@Summary		Assign a role
//	@Description	Grants a role to the user with the given email, creating the role if needed. Requires the Admin role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.AssignRoleRequest	true	"Target email and role name"
//	@Success		200		{object}	todosdk.Response[any]
//	@Failure		400		{object}	todosdk.Response[any]	"Validation failed or unknown email"
//	@Failure		401		{object}	todosdk.Response[any]
//	@Failure		403		{object}	todosdk.Response[any]	"Caller is not an Admin"
//	@Failure		500		{object}	todosdk.Response[any]
//	@Security		BearerAuth
//	@Router			/api/users/assign-role [post]
func (h *UsersHandler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.AssignRoleRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, msgBadBody)
		return
	}

	err := h.UserService.AssignRole(ctx, req.Email, req.RoleName)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.Fail(w, http.StatusBadRequest, validationMessage(verr))
		return
	case err != nil:
		log.Error("assign role failed", "error", err)
		httpx.Fail(w, http.StatusInternalServerError, "Something went wrong, Role not assigned!!")
		return
	}

	httpx.OK(w, http.StatusOK, nil,
		fmt.Sprintf("Role name %s assigned to %s successful!", req.RoleName, req.Email))
}
