package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type bindingQuery struct {
	Day string `form:"day" binding:"required,weekday"`
}

type bindingBody struct {
	Values []string `json:"values" binding:"required,min=1,dive,datetime_any"`
}

func TestRegisterValidators(t *testing.T) {
	if err := RegisterValidators(); err != nil {
		t.Fatalf("expected validators to register, got %v", err)
	}

	r := gin.New()
	r.GET("/day", func(c *gin.Context) {
		var q bindingQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})
	r.POST("/values", func(c *gin.Context) {
		var b bindingBody
		if err := c.ShouldBindJSON(&b); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	cases := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/day?day=Monday", "", http.StatusOK},
		{http.MethodGet, "/day?day=2", "", http.StatusOK},
		{http.MethodGet, "/day?day=Funday", "", http.StatusBadRequest},
		{http.MethodGet, "/day?day=9", "", http.StatusBadRequest},
		{http.MethodPost, "/values", `{"values":["2024-01-02","October 22, 2022"]}`, http.StatusOK},
		{http.MethodPost, "/values", `{"values":["2024-01-02","invalid"]}`, http.StatusBadRequest},
		{http.MethodPost, "/values", `{"values":[]}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s %s: expected %d, got %d", tc.method, tc.target, tc.body, tc.want, rr.Code)
		}
	}
}
