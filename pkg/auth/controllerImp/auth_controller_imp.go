package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fms/entities"
	"fms/pkg/auth/service"
	"fms/pkg/middleware"
)

type AuthCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) *AuthCtrl { return &AuthCtrl{svc} }

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func validRole(r string) bool {
	return r == entities.RoleOwner || r == entities.RoleFarmer || r == entities.RoleSubscriber
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !strings.Contains(req.Email, "@") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid email"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "password must be at least 8 characters"})
	}
	if req.Role == "" {
		req.Role = entities.RoleSubscriber
	}
	if !validRole(req.Role) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid role"})
	}
	token, err := h.svc.Register(req.Email, req.Password, req.Name, req.Role)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email already registered"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"access_token": token, "token_type": "bearer"})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	token, err := h.svc.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"access_token": token, "token_type": "bearer"})
}

func (h *AuthCtrl) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

type resetReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *AuthCtrl) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(req.NewPassword) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "password must be at least 8 characters"})
	}
	err := h.svc.ResetPassword(middleware.CurrentUser(c), req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "current password is incorrect"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

func (h *AuthCtrl) CheckDefaultPassword(c echo.Context) error {
	isDefault := h.svc.IsDefaultPassword(middleware.CurrentUser(c))
	return c.JSON(http.StatusOK, map[string]bool{"is_default_password": isDefault, "must_reset": isDefault})
}
