package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/dto"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/httpresp"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	ucUser "github.com/BruksfildServices01/service-booking/internal/usecase/user"
)

type AuthHandler struct {
	register *ucUser.Register
	login    *ucUser.Login
	me       *ucUser.GetMe
}

func NewAuthHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	me *ucUser.GetMe,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		me:       me,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,role"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Responses ---------

type SessionResponse struct {
	dto.UserView
	Token string `json:"token"`
}

func newSessionResponse(s *ucUser.Session) SessionResponse {
	return SessionResponse{
		UserView: dto.NewUserView(*s.User),
		Token:    s.Token,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, newSessionResponse(s))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, newSessionResponse(s))
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.me.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewUserView(*u))
}
