package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMiddlewareRecordsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Middleware())
	r.GET("/metrics", Handler())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/ping/1", "/ping/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	LoginAttempts.WithLabelValues("user", "success").Inc()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}

	body := rr.Body.String()
	for _, want := range []string{
		`saira_http_requests_total{method="GET",route="/ping/:id",status="204"} 2`,
		`saira_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
		`saira_login_attempts_total{account="user",result="success"} 1`,
		`saira_http_request_duration_seconds_count{method="GET",route="/ping/:id"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}
