package api

import (
	"context"
	"time"

	"github.com/Portalfi/Portalfi-Backend/api/models"
	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const welcomeEmailTimeout = 30 * time.Second

// Auth serves the local email/password accounts.
type Auth struct {
	server *Server
}

func (a Auth) router(server *Server) {
	a.server = server

	serverGroup := server.router.Group("/auth", server.DatabaseRequired())
	serverGroup.POST("register", a.register)
	serverGroup.POST("login", a.login)
	serverGroup.GET("profile", server.AuthenticatedMiddleware(), a.profile)
	serverGroup.POST("logout", server.AuthenticatedMiddleware(), a.logout)
}

func (a *Auth) register(ctx *gin.Context) {
	var request models.RegisterUserParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	user, err := a.server.users.Register(ctx.Request.Context(), user_service.RegisterParams{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
		Role:     request.Role,
	})
	if err != nil {
		a.server.fail(ctx, err)
		return
	}

	response, ok := a.issueToken(ctx, user)
	if !ok {
		return
	}

	a.sendWelcomeEmail(user)
	respondCreated(ctx, response)
}

func (a *Auth) login(ctx *gin.Context) {
	var request models.UserLoginParams
	if !a.server.bindJSON(ctx, &request) {
		return
	}

	user, err := a.server.users.Authenticate(ctx.Request.Context(), request.Email, request.Password)
	if err != nil {
		a.server.fail(ctx, err)
		return
	}

	response, ok := a.issueToken(ctx, user)
	if !ok {
		return
	}
	respondCreated(ctx, response)
}

func (a *Auth) profile(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		a.server.fail(ctx, err)
		return
	}

	user, err := a.server.users.FetchUserByID(ctx.Request.Context(), activeUser.UserID)
	if err != nil {
		a.server.fail(ctx, err)
		return
	}
	respondOK(ctx, models.ToUserSummary(user))
}

func (a *Auth) logout(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		a.server.fail(ctx, err)
		return
	}

	if a.server.sessions != nil {
		if err := a.server.sessions.RevokeSession(ctx.Request.Context(), activeUser.UserID); err != nil {
			a.server.fail(ctx, err)
			return
		}
	}
	respondCreated(ctx, models.MessageResponse{Message: "Logged out successfully"})
}

// issueToken signs a token for user, records its session and exposes the
// user to the activity logger. On failure the error response is written.
func (a *Auth) issueToken(ctx *gin.Context, user *db.User) (models.UserWithToken, bool) {
	token, claims, err := a.server.tokens.CreateToken(utils.TokenObject{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		a.server.fail(ctx, err)
		return models.UserWithToken{}, false
	}

	if a.server.sessions != nil {
		ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
		if err := a.server.sessions.StoreSession(ctx.Request.Context(), claims.UserID, claims.SessionID, ttl); err != nil {
			a.server.fail(ctx, err)
			return models.UserWithToken{}, false
		}
	}

	ctx.Set(utils.ContextUserKey, claims)
	return models.UserWithToken{AccessToken: token, User: models.ToUserSummary(user)}, true
}

// sendWelcomeEmail runs after the response; delivery problems are only logged.
func (a *Auth) sendWelcomeEmail(user *db.User) {
	name := user.Email
	if user.Name.Valid && user.Name.String != "" {
		name = user.Name.String
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), welcomeEmailTimeout)
		defer cancel()

		if err := a.server.email.SendWelcomeEmail(ctx, user.Email, name, ""); err != nil {
			a.server.logger.WithFields(logrus.Fields{
				"user_id": user.ID.String(),
				"error":   err.Error(),
			}).Warn("Welcome email not sent")
		}
	}()
}
