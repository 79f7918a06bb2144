package api

import (
	"github.com/Portalfi/Portalfi-Backend/api/models"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
)

// Users is the admin facing management of local accounts.
type Users struct {
	server *Server
}

func (u Users) router(server *Server) {
	u.server = server

	serverGroup := server.router.Group("/users", server.DatabaseRequired(), server.AuthenticatedMiddleware())
	serverGroup.GET("", server.AdminMiddleware(), u.listUsers)
	serverGroup.GET(":id", server.AdminMiddleware(), u.getUser)
	serverGroup.PUT(":id", u.updateUser)
	serverGroup.DELETE(":id", server.AdminMiddleware(), u.deleteUser)
	serverGroup.PATCH(":id/role", server.AdminMiddleware(), u.changeRole)
}

func (u *Users) listUsers(ctx *gin.Context) {
	users, err := u.server.users.ListUsers(ctx.Request.Context())
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.ToUserResponses(users))
}

func (u *Users) getUser(ctx *gin.Context) {
	user, err := u.server.users.FetchUserByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.ToUserResponse(user))
}

func (u *Users) updateUser(ctx *gin.Context) {
	var request models.UpdateUserParams
	if !u.server.bindJSON(ctx, &request) {
		return
	}

	actor, err := utils.GetActiveUser(ctx)
	if err != nil {
		u.server.fail(ctx, err)
		return
	}

	user, err := u.server.users.UpdateUser(ctx.Request.Context(), ctx.Param("id"), user_service.UpdateParams{
		Email:    request.Email,
		Name:     request.Name,
		Password: request.Password,
	}, actor)
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.ToUserResponse(user))
}

func (u *Users) deleteUser(ctx *gin.Context) {
	if err := u.server.users.DeleteUser(ctx.Request.Context(), ctx.Param("id")); err != nil {
		u.server.fail(ctx, err)
		return
	}
	if !u.revokeSession(ctx, ctx.Param("id")) {
		return
	}
	respondOK(ctx, models.MessageResponse{Message: "User deleted successfully"})
}

func (u *Users) changeRole(ctx *gin.Context) {
	var request models.ChangeRoleParams
	if !u.server.bindJSON(ctx, &request) {
		return
	}

	user, err := u.server.users.ChangeRole(ctx.Request.Context(), ctx.Param("id"), request.Role)
	if err != nil {
		u.server.fail(ctx, err)
		return
	}
	if !u.revokeSession(ctx, user.ID.String()) {
		return
	}
	respondOK(ctx, models.ToUserResponse(user))
}

// revokeSession ends the active session of userID.
func (u *Users) revokeSession(ctx *gin.Context, userID string) bool {
	if u.server.sessions == nil {
		return true
	}
	if err := u.server.sessions.RevokeSession(ctx.Request.Context(), userID); err != nil {
		u.server.fail(ctx, err)
		return false
	}
	return true
}
