package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"log/syslog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logrusSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// maxLoggedBody caps how much of a request body ends up in a log line.
const maxLoggedBody = 2048

type Logger struct {
	*logrus.Logger
}

type Options struct {
	Level             string
	Papertrail        string
	PapertrailAppName string
	Pretty            bool
}

func NewLogger(opts Options) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{PrettyPrint: opts.Pretty})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if opts.Papertrail != "" {
		hook, err := logrusSyslog.NewSyslogHook("udp", opts.Papertrail, syslog.LOG_INFO, opts.PapertrailAppName)
		if err != nil {
			log.WithError(err).Error("Unable to connect to Papertrail")
		} else {
			log.Hooks.Add(hook)
		}
	}

	return &Logger{log}
}

// NewTestLogger discards output, for use in tests.
func NewTestLogger() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{log}
}

// LoggingMiddleWare logs one line per request with status, latency and a
// redacted copy of small JSON bodies.
func (l *Logger) LoggingMiddleWare(requestIDKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		statusCode := c.Writer.Status()
		fields := logrus.Fields{
			"request_id": c.GetString(requestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     statusCode,
			"duration":   time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}

		if len(requestBody) > 0 && len(requestBody) < maxLoggedBody {
			var requestJson map[string]interface{}
			if err := json.Unmarshal(requestBody, &requestJson); err == nil {
				fields["request"] = RedactFields(requestJson)
			}
		}

		entry := l.WithFields(fields)
		switch {
		case statusCode >= 500:
			entry.Error("Request-Response")
		case statusCode >= 400:
			entry.Warn("Request-Response")
		default:
			entry.Info("Request-Response")
		}
	}
}
