// Package app ties a gin engine to the MongoDB and Redis clients its handlers
// need, and hands that typed application object to every request.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"ginmongo/config"
	"ginmongo/database"
	"ginmongo/dates"
	"ginmongo/utils"
)

const contextKey = "app"

// LoggerKey is the gin context key holding a request-scoped *zap.Logger.
const LoggerKey = "logger"

// App is a gin engine carrying the clients request handlers reach through it.
// The driver's client is safe for concurrent use, so one client serves both
// blocking and goroutine-based callers.
type App struct {
	*gin.Engine

	MongoClient *mongo.Client
	DB          *mongo.Database
	Cache       *redis.Client

	Logger *zap.Logger
	Clock  dates.Clock
}

// Option customises an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.Logger = l }
}

// WithClock sets the clock handlers use for "now".
func WithClock(c dates.Clock) Option {
	return func(a *App) { a.Clock = c }
}

// New wraps engine and installs the middleware that exposes the App to
// requests. Call it before registering routes.
func New(engine *gin.Engine, opts ...Option) *App {
	a := &App{
		Engine: engine,
		Logger: zap.L(),
		Clock:  dates.SystemClock,
	}
	for _, opt := range opts {
		opt(a)
	}
	engine.Use(a.bind())
	return a
}

func (a *App) bind() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, a)
		c.Next()
	}
}

// Connect dials MongoDB and Redis using cfg.
func (a *App) Connect(ctx context.Context, cfg config.Config) error {
	client, db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return err
	}
	cache, err := utils.NewCacheClient(ctx, cfg)
	if err != nil {
		_ = client.Disconnect(ctx)
		return err
	}
	a.MongoClient = client
	a.DB = db
	a.Cache = cache
	return nil
}

// Close releases whichever clients are open.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect MongoDB: %w", err))
		}
	}
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

// HealthMonitor builds a monitor over the connected clients.
func (a *App) HealthMonitor() *utils.HealthMonitor {
	m := &utils.HealthMonitor{Clock: a.Clock}
	if a.MongoClient != nil {
		m.Mongo = utils.MongoCheck(a.MongoClient)
	}
	if a.Cache != nil {
		m.Redis = utils.RedisCheck(a.Cache)
	}
	return m
}

// FromContext returns the App stored on c by New.
func FromContext(c *gin.Context) (*App, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return nil, false
	}
	a, ok := v.(*App)
	return a, ok
}

// Request is a gin context whose App is known.
type Request struct {
	*gin.Context
	App *App
}

// Now is the App clock's current UTC instant shifted by offset.
func (r *Request) Now(offset dates.Offset) time.Time {
	return dates.Now(r.App.Clock, offset)
}

// Logger returns the request-scoped logger if middleware set one, otherwise
// the App's logger.
func (r *Request) Logger() *zap.Logger {
	if l, exists := r.Get(LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if r.App.Logger != nil {
		return r.App.Logger
	}
	return zap.L()
}

// HandlerFunc handles a Request.
type HandlerFunc func(r *Request)

// Handle adapts h to gin. Requests reaching it without an App are answered
// with 500.
func Handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := FromContext(c)
		if !ok {
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "application not bound to request")
			return
		}
		h(&Request{Context: c, App: a})
	}
}
