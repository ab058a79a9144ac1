package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/dto"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/httpresp"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	ucUser "github.com/BruksfildServices01/service-booking/internal/usecase/user"
)

type UserHandler struct {
	list       *ucUser.ListUsers
	updateRole *ucUser.UpdateUserRole
	delete     *ucUser.DeleteUser
}

func NewUserHandler(
	list *ucUser.ListUsers,
	updateRole *ucUser.UpdateUserRole,
	del *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		list:       list,
		updateRole: updateRole,
		delete:     del,
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserViews(users))
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateRole.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id, req.Role)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserView(*u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "User removed")
}
