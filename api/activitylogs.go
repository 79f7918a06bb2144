package api

import (
	"net/http"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
)

const defaultActivityLimit = 50

type ActivityLogs struct {
	server *Server
}

func (h ActivityLogs) router(server *Server) {
	h.server = server

	server.router.GET("/users/:id/activity", server.DatabaseRequired(), server.AuthenticatedMiddleware(), h.getUserActivity)
}

// getUserActivity lists the recorded activity of a user, newest first.
// Users may read their own feed; admins may read anyone's.
func (h *ActivityLogs) getUserActivity(ctx *gin.Context) {
	var query models.ActivityLogQuery
	if !h.server.bindQuery(ctx, &query) {
		return
	}

	actor, err := utils.GetActiveUser(ctx)
	if err != nil {
		h.server.fail(ctx, err)
		return
	}

	userID := ctx.Param("id")
	if actor.Role != user_service.RoleAdmin && actor.UserID != userID {
		h.server.writeError(ctx, newAPIError(http.StatusForbidden, "Forbidden - Can only read own activity"))
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultActivityLimit
	}

	logs, err := h.server.activity.GetByUser(ctx.Request.Context(), userID, query.Limit, query.Offset)
	if err != nil {
		h.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.ToActivityLogResponses(logs))
}
