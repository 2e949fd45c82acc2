package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agriportal/pkg/auth/controller"
	"agriportal/pkg/auth/service"
	"agriportal/pkg/auth/session"
	"agriportal/pkg/middleware"
)

type authCtrl struct {
	svc    service.AuthService
	secret string
}

func New(svc service.AuthService, sessionSecret string) controller.AuthController {
	return &authCtrl{svc: svc, secret: sessionSecret}
}

type loginReq struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
	}
	actor, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	token, err := session.Issue(*actor, h.secret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.SetCookie(session.Cookie(token))
	return c.JSON(http.StatusOK, map[string]any{"success": true, "actor": actor})
}

func (h *authCtrl) Logout(c echo.Context) error {
	c.SetCookie(session.ExpiredCookie())
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *authCtrl) Me(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"authenticated": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"authenticated": true, "actor": actor})
}

type registerReq struct {
	Secret   string `json:"secret" form:"secret"`
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
	IsAdmin  bool   `json:"is_admin" form:"is_admin"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
	}
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email, name and password are required"})
	}
	u, err := h.svc.Register(req.Secret, req.Email, req.Name, req.Password, req.IsAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadSecret):
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, u)
}
