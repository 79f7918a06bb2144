package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/middleware"
	"github.com/Portalfi/Portalfi-Backend/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	activitylogs "github.com/Portalfi/Portalfi-Backend/services/activity_logs"
	"github.com/Portalfi/Portalfi-Backend/services/gnosis"
	"github.com/Portalfi/Portalfi-Backend/services/i18n"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/metrics"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/tasks"
	"github.com/Portalfi/Portalfi-Backend/services/notification"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
)

// SessionStore tracks the active local session of each user.
type SessionStore interface {
	StoreSession(ctx context.Context, userID, sessionID string, ttl time.Duration) error
	ActiveSession(ctx context.Context, userID string) (string, error)
	RevokeSession(ctx context.Context, userID string) error
}

// Dependencies are the optional backing services. Nil members disable the
// features that need them.
type Dependencies struct {
	Store    *db.Store
	Sessions SessionStore
	Mailer   notification.Mailer
	SMS      *notification.SMSService
}

type Server struct {
	router *gin.Engine
	config *utils.Config
	logger *logging.Logger

	gnosisPay   *gnosispay.Client
	authService *gnosis.AuthService
	cardService *gnosis.CardService
	kycService  *gnosis.KYCService

	store    *db.Store
	users    *user_service.UserService
	activity *activitylogs.ActivityLog
	sessions SessionStore
	tokens   *utils.JWTToken

	email     *notification.EmailService
	sms       *notification.SMSService
	scheduler *tasks.TaskScheduler
}

func NewServer(config *utils.Config, logger *logging.Logger, deps Dependencies) *Server {
	registerValidators()

	if config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := gnosispay.NewClient(config.GnosisPayAPIURL, logger)
	translator := i18n.NewTranslator()

	mailer := deps.Mailer
	if mailer == nil {
		mailer = notification.DisabledMailer{}
	}
	sms := deps.SMS
	if sms == nil {
		sms = notification.NewSMSService(notification.SMSConfig{
			AccountSID:    config.TwilioAccountSID,
			AuthToken:     config.TwilioAuthToken,
			FromNumber:    config.TwilioPhoneNumber,
			AppName:       config.AppName,
			ExpiryMinutes: config.OTPExpiryMinutes,
		}, translator, logger)
	}

	s := &Server{
		router:      gin.New(),
		config:      config,
		logger:      logger,
		gnosisPay:   client,
		authService: gnosis.NewAuthService(client, logger),
		cardService: gnosis.NewCardService(client),
		kycService:  gnosis.NewKYCService(client, logger),
		store:       deps.Store,
		sessions:    deps.Sessions,
		tokens:      utils.NewJWTToken(config),
		email:       notification.NewEmailService(mailer, translator, config.SMTPFrom, config.AppURL, logger),
		sms:         sms,
		scheduler:   tasks.NewTaskScheduler(logger),
	}

	if deps.Store != nil {
		s.users = user_service.NewUserService(deps.Store, logger)
		s.activity = activitylogs.NewActivityLog(deps.Store, logger)
	}

	s.router.Use(gin.CustomRecovery(s.recoverPanic))
	s.router.Use(RequestIDMiddleware())
	s.router.Use(CORSMiddleware(config.CORSOrigin))
	s.router.Use(logger.LoggingMiddleWare(utils.ContextRequestIDKey))
	s.router.Use(metrics.Middleware())
	audit := middleware.NewActivityLogMiddleware(s.activity, config.DBLoggingEnabled)
	s.router.Use(audit.RequestLogger(), audit.ActivityLogger())
	s.router.NoRoute(s.notFound)

	s.routes()
	return s
}

func (s *Server) routes() {
	dr := models.SuccessResponse{
		Status:  "success",
		Message: fmt.Sprintf("Welcome to %s!", s.config.AppName),
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", metrics.Handler())

	/// Local accounts and notifications
	Auth{}.router(s)
	Users{}.router(s)
	ActivityLogs{}.router(s)
	SMS{}.router(s)
	Email{}.router(s)

	/// GnosisPay proxy
	GnosisPayAuth{}.router(s)
	GnosisPayUser{}.router(s)
	GnosisPayAccount{}.router(s)
	GnosisPaySafe{}.router(s)
	GnosisPayCards{}.router(s)
	GnosisPayCardOrders{}.router(s)
	GnosisPayKYC{}.router(s)
	GnosisPayIBAN{}.router(s)
	GnosisPayTransactions{}.router(s)
	GnosisPayRewards{}.router(s)
	GnosisPayWebhooks{}.router(s)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// StartBackgroundTasks schedules log retention when the database is available.
func (s *Server) StartBackgroundTasks() {
	if s.activity == nil {
		return
	}

	retention := activitylogs.RetentionFromDays(s.config.LogRetentionDays)
	if _, err := s.scheduler.AddTask("log-retention", "Delete old logs", s.activity.Cleanup(retention), activitylogs.CleanupInterval); err != nil {
		s.logger.WithError(err).Error("Unable to register log retention task")
		return
	}
	if err := s.scheduler.ScheduleTask("log-retention", time.Minute); err != nil {
		s.logger.WithError(err).Error("Unable to schedule log retention task")
	}
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%v", s.config.ServerPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.StartBackgroundTasks()
	defer s.scheduler.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.config.ServerPort).Info("Server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		s.logger.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(ctx *gin.Context) {
	status := gin.H{
		"status":   "ok",
		"version":  utils.REVISION,
		"database": "disabled",
		"sessions": "disabled",
	}

	if s.store != nil {
		status["database"] = "ok"
		if err := s.store.Ping(ctx.Request.Context()); err != nil {
			status["database"] = "unreachable"
		}
	}
	if s.sessions != nil {
		status["sessions"] = "ok"
	}

	ctx.JSON(http.StatusOK, status)
}
