package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/service"
)

type Service interface {
	Register(ctx context.Context, input service.RegisterInput) (entity.User, error)
	Login(ctx context.Context, employeeNumber, password string) (string, entity.User, error)
	ValidateToken(ctx context.Context, raw string) (entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error

	Users(ctx context.Context) ([]entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	SetUserRole(ctx context.Context, id uuid.UUID, role entity.Role) (entity.User, error)
	SetUserPermissions(ctx context.Context, userID uuid.UUID, names []string) (entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	Permissions(ctx context.Context) ([]entity.Permission, error)
	PermissionByID(ctx context.Context, id uuid.UUID) (entity.Permission, error)
	CreatePermission(ctx context.Context, name, description string) (entity.Permission, error)
	UpdatePermission(ctx context.Context, id uuid.UUID, name, description string) (entity.Permission, error)
	DeletePermission(ctx context.Context, id uuid.UUID) error

	ReportItem(ctx context.Context, input service.ReportItemInput) (entity.LostItem, error)
	LostItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.LostItem, int, error)
	LostItemByID(ctx context.Context, id uuid.UUID, expand entity.Expand) (entity.LostItem, error)
	EditItem(ctx context.Context, id uuid.UUID, input service.EditItemInput) (entity.LostItem, error)
	AddItemImages(ctx context.Context, id uuid.UUID, uploads []service.ImageUpload) (entity.LostItem, error)
	RemoveItemImage(ctx context.Context, id uuid.UUID, publicID string) (entity.LostItem, error)
	DeliverItem(ctx context.Context, id uuid.UUID, input service.DeliverItemInput) (entity.DeliveredItem, error)
	DeleteLostItem(ctx context.Context, id uuid.UUID) error

	DeliveredItems(ctx context.Context, filter entity.ItemsFilter) ([]entity.DeliveredItem, int, error)
	DeliveredItemByID(ctx context.Context, id uuid.UUID, expand entity.Expand) (entity.DeliveredItem, error)
	RevertItem(ctx context.Context, deliveredID uuid.UUID) (entity.LostItem, error)
	SetItemArchived(ctx context.Context, id uuid.UUID, archived bool) error
	DeleteDeliveredItem(ctx context.Context, id uuid.UUID) error
}

// @title Lost & Found API
// @version 1.0
// @description Item tracking for airline ground operations.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health check
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

type RegisterRequest struct {
	EmployeeNumber string `json:"employeeNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Password       string `json:"password"`
}

// Register godoc
// @Summary      Register a new employee account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account details"
// @Success      201 {object} entity.User
// @Failure      400 {object} ResponseError "Invalid account details"
// @Failure      409 {object} ResponseError "Employee number already registered"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	user, err := h.s.Register(ctx, service.RegisterInput{
		EmployeeNumber: req.EmployeeNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Password:       req.Password,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, user)
}

type LoginRequest struct {
	EmployeeNumber string `json:"employeeNumber"`
	Password       string `json:"password"`
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        entity.User `json:"user"`
}

// Login godoc
// @Summary      Exchange credentials for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ResponseError "Invalid credentials"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	accessToken, user, err := h.s.Login(ctx, req.EmployeeNumber, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, LoginResponse{AccessToken: accessToken, User: user})
}

type ValidateRequest struct {
	AccessToken string `json:"accessToken"`
}

// Validate godoc
// @Summary      Validate an access token and return its account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ValidateRequest true "Token"
// @Success      200 {object} entity.User
// @Failure      401 {object} ResponseError "Invalid or expired token"
// @Router       /auth/validate [post]
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	user, err := h.s.ValidateToken(ctx, req.AccessToken)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ChangePassword godoc
// @Summary      Change an account password
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        request body ChangePasswordRequest true "Passwords"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ResponseError "Current password mismatch"
// @Router       /users/{id}/password [put]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	var req ChangePasswordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	err = h.s.ChangePassword(ctx, id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Password changed"})
}

// Users godoc
// @Summary      List accounts
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.User
// @Failure      403 {object} ResponseError "Insufficient rights"
// @Router       /users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// UserByID godoc
// @Summary      Account details
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} entity.User
// @Failure      404 {object} ResponseError "No such user"
// @Router       /users/{id} [get]
func (h *Handler) UserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	user, err := h.s.UserByID(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

type SetRoleRequest struct {
	Role entity.Role `json:"role"`
}

// SetUserRole godoc
// @Summary      Change an account role
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        request body SetRoleRequest true "New role"
// @Success      200 {object} entity.User
// @Failure      403 {object} ResponseError "Admins only"
// @Router       /users/{id}/role [patch]
func (h *Handler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	var req SetRoleRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	user, err := h.s.SetUserRole(ctx, id, req.Role)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

type SetPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// SetUserPermissions godoc
// @Summary      Replace an account's permission set
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        request body SetPermissionsRequest true "Permission names"
// @Success      200 {object} entity.User
// @Failure      400 {object} ResponseError "Unknown permission name"
// @Router       /users/{id}/permissions [put]
func (h *Handler) SetUserPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	var req SetPermissionsRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	user, err := h.s.SetUserPermissions(ctx, id, req.Permissions)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ResponseError "Admins only"
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	err = h.s.DeleteUser(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "User deleted"})
}

// Permissions godoc
// @Summary      List the permission catalog
// @Tags         permissions
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} entity.Permission
// @Router       /permissions [get]
func (h *Handler) Permissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	permissions, err := h.s.Permissions(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, permissions)
}

// PermissionByID godoc
// @Summary      Permission details
// @Tags         permissions
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Permission id"
// @Success      200 {object} entity.Permission
// @Failure      404 {object} ResponseError "No such permission"
// @Router       /permissions/{id} [get]
func (h *Handler) PermissionByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid permission id")
		return
	}

	permission, err := h.s.PermissionByID(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, permission)
}

type PermissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePermission godoc
// @Summary      Create a permission
// @Tags         permissions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body PermissionRequest true "Permission"
// @Success      201 {object} entity.Permission
// @Failure      409 {object} ResponseError "Name already taken"
// @Router       /permissions [post]
func (h *Handler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PermissionRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	permission, err := h.s.CreatePermission(ctx, req.Name, req.Description)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, permission)
}

// UpdatePermission godoc
// @Summary      Update a permission
// @Tags         permissions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Permission id"
// @Param        request body PermissionRequest true "Permission"
// @Success      200 {object} entity.Permission
// @Failure      404 {object} ResponseError "No such permission"
// @Router       /permissions/{id} [put]
func (h *Handler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid permission id")
		return
	}

	var req PermissionRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Incorrect request body")
		return
	}

	permission, err := h.s.UpdatePermission(ctx, id, req.Name, req.Description)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, permission)
}

// DeletePermission godoc
// @Summary      Delete a permission
// @Description  Fails with 409 while any user still holds the permission; the response lists every holder.
// @Tags         permissions
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Permission id"
// @Success      200 {object} MessageResponse
// @Failure      409 {object} ResponseError "Permission still assigned"
// @Router       /permissions/{id} [delete]
func (h *Handler) DeletePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid permission id")
		return
	}

	err = h.s.DeletePermission(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Permission deleted"})
}
