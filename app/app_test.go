package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ginmongo/dates"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewBindsAppToRequests(t *testing.T) {
	a := New(gin.New())

	var seen *App
	a.GET("/", func(c *gin.Context) {
		got, ok := FromContext(c)
		if !ok {
			t.Errorf("expected app on context")
		}
		seen = got
		c.Status(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	a.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if seen != a {
		t.Fatalf("expected handler to see the same app")
	}
}

func TestHandleGivesTypedRequest(t *testing.T) {
	fixed := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)
	a := New(gin.New(), WithClock(dates.FixedClock(fixed)), WithLogger(zap.NewNop()))
	a.GET("/now", Handle(func(r *Request) {
		r.JSON(http.StatusOK, gin.H{"now": dates.ToCanonicalString(r.Now(dates.Offset{Days: -1}))})
	}))

	rr := httptest.NewRecorder()
	a.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/now", nil))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding response: %v", err)
	}
	if resp["now"] != "2024-09-04T00:00:00Z" {
		t.Fatalf("expected fixed clock minus a day, got %s", resp["now"])
	}
}

func TestHandleWithoutApp(t *testing.T) {
	r := gin.New()
	called := false
	r.GET("/", Handle(func(*Request) { called = true }))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if called {
		t.Fatalf("handler must not run without an app")
	}
}

func TestRequestLogger(t *testing.T) {
	base := zap.NewNop()
	scoped := zap.NewNop().With(zap.String("request_id", "abc"))
	a := New(gin.New(), WithLogger(base))

	var plain, withScoped *zap.Logger
	a.GET("/plain", Handle(func(r *Request) { plain = r.Logger() }))
	a.GET("/scoped", func(c *gin.Context) { c.Set(LoggerKey, scoped) }, Handle(func(r *Request) { withScoped = r.Logger() }))

	a.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))
	a.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/scoped", nil))
	if plain != base {
		t.Fatalf("expected app logger")
	}
	if withScoped != scoped {
		t.Fatalf("expected request-scoped logger")
	}
}

func TestCloseWithoutClients(t *testing.T) {
	a := New(gin.New())
	if err := a.Close(context.Background()); err != nil {
		t.Fatalf("expected no error closing unconnected app, got %v", err)
	}
}

func TestHealthMonitorWithoutClients(t *testing.T) {
	a := New(gin.New(), WithClock(dates.FixedClock(time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC))))
	status := a.HealthMonitor().CheckNow(context.Background())
	if status.Mongo || status.Redis {
		t.Fatalf("expected unconnected app to be unhealthy, got %+v", status)
	}
	if status.CheckedAt.String() != "2024-09-05T00:00:00Z" {
		t.Fatalf("expected app clock to stamp the check, got %s", status.CheckedAt)
	}
}
