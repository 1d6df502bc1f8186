package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simoamogit/student-tracker/internal/model"
)

func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return Bind(c, dst)
}

func TestBindGradeValue(t *testing.T) {
	Setup()

	t.Run("ZeroIsAValidGrade", func(t *testing.T) {
		var req model.CreateGradeRequest
		fields := bindJSON(t, `{"subject":"math","value":0,"date":"2026-03-01T00:00:00Z","grade_type":"written"}`, &req)
		if fields != nil {
			t.Fatalf("unexpected field errors: %v", fields)
		}
		if req.Value == nil || *req.Value != 0 {
			t.Errorf("value = %v, want 0", req.Value)
		}
	})

	t.Run("MissingValueRejected", func(t *testing.T) {
		var req model.CreateGradeRequest
		fields := bindJSON(t, `{"subject":"math","date":"2026-03-01T00:00:00Z","grade_type":"written"}`, &req)
		if fields["value"] == "" {
			t.Errorf("expected a field error for value, got %v", fields)
		}
	})

	t.Run("OutOfRangeRejected", func(t *testing.T) {
		var req model.CreateGradeRequest
		fields := bindJSON(t, `{"subject":"math","value":11,"date":"2026-03-01T00:00:00Z","grade_type":"written"}`, &req)
		if fields["value"] == "" {
			t.Errorf("expected a field error for value, got %v", fields)
		}
	})
}
