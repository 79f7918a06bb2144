package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Portalfi/Portalfi-Backend/services"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	gnosisPayToken  = "gnosispay_token"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ctx.Set(utils.ContextRequestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

func CORSMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-Id")
		c.Header("Access-Control-Allow-Methods", "POST,HEAD,PATCH,OPTIONS,GET,PUT,DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// GnosisPayTokenMiddleware requires a bearer token and keeps it on the
// context exactly as sent. The token is never parsed locally.
func (s *Server) GnosisPayTokenMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			s.logger.Warn("Missing authorization header")
			s.abortWithError(ctx, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			s.logger.Warn("Invalid authorization header format")
			s.abortWithError(ctx, http.StatusUnauthorized, "Invalid authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if strings.TrimSpace(token) == "" {
			s.logger.Warn("Empty bearer token")
			s.abortWithError(ctx, http.StatusUnauthorized, "Bearer token is empty")
			return
		}

		ctx.Set(gnosisPayToken, token)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	return ctx.GetString(gnosisPayToken)
}

// AuthenticatedMiddleware verifies a local access token and, when sessions
// are tracked, that it belongs to the user's active session.
func (s *Server) AuthenticatedMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenSplit := strings.Split(header, " ")
		if len(tokenSplit) != 2 || strings.ToLower(tokenSplit[0]) != "bearer" || tokenSplit[1] == "" {
			s.abortWithError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.tokens.VerifyToken(tokenSplit[1])
		if err != nil {
			s.abortWithError(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if s.sessions != nil {
			active, err := s.sessions.ActiveSession(ctx.Request.Context(), user.UserID)
			if err != nil && !errors.Is(err, services.ErrSessionNotFound) {
				s.fail(ctx, err)
				ctx.Abort()
				return
			}
			if active != user.SessionID {
				s.abortWithError(ctx, http.StatusUnauthorized, "Session expired")
				return
			}
		}

		// The stored account is authoritative for existence and role.
		if s.users != nil {
			account, err := s.users.FetchUserByID(ctx.Request.Context(), user.UserID)
			if err != nil {
				if errors.Is(err, user_service.ErrUserNotFound) {
					s.abortWithError(ctx, http.StatusUnauthorized, "Unauthorized")
					return
				}
				s.fail(ctx, err)
				ctx.Abort()
				return
			}
			user.Email = account.Email
			user.Role = account.Role
		}

		ctx.Set(utils.ContextUserKey, user)
		ctx.Next()
	}
}

func (s *Server) AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := utils.GetActiveUser(ctx)
		if err != nil || user.Role != user_service.RoleAdmin {
			s.abortWithError(ctx, http.StatusForbidden, "Forbidden - Admin access required")
			return
		}
		ctx.Next()
	}
}

// DatabaseRequired short-circuits local account routes when no database is configured.
func (s *Server) DatabaseRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if s.users == nil {
			s.abortWithError(ctx, http.StatusServiceUnavailable, "Local accounts are unavailable: database not configured")
			return
		}
		ctx.Next()
	}
}
