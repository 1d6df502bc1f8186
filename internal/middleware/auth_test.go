package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/simoamogit/student-tracker/internal/config"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/response"
	"github.com/simoamogit/student-tracker/internal/service"
)

type fakeResolver struct {
	users map[uuid.UUID]*model.User
}

func (f *fakeResolver) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func newTestRouter(auth *service.AuthService, users UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(auth, users), func(c *gin.Context) {
		user := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID.String()})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) response.ErrCode {
	t.Helper()
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Error == nil {
		t.Fatal("expected error body")
	}
	return body.Error.Code
}

func TestRequireAuth(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	auth := service.NewAuthService(cfg)

	user := &model.User{ID: uuid.New(), Email: "student@example.com"}
	resolver := &fakeResolver{users: map[uuid.UUID]*model.User{user.ID: user}}
	router := newTestRouter(auth, resolver)

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Run("ValidToken", func(t *testing.T) {
		w := doRequest(t, router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body["user_id"] != user.ID.String() {
			t.Errorf("user_id = %s, want %s", body["user_id"], user.ID)
		}
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := doRequest(t, router, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if code := errorCode(t, w); code != response.ErrTokenRequired {
			t.Errorf("code = %s, want %s", code, response.ErrTokenRequired)
		}
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		w := doRequest(t, router, "Token "+token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if code := errorCode(t, w); code != response.ErrTokenRequired {
			t.Errorf("code = %s, want %s", code, response.ErrTokenRequired)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		w := doRequest(t, router, "Bearer not-a-token")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if code := errorCode(t, w); code != response.ErrTokenInvalid {
			t.Errorf("code = %s, want %s", code, response.ErrTokenInvalid)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expiredAuth := service.NewAuthService(&config.Config{
			JWTSecret: "test-secret",
			JWTExpiry: -time.Hour,
		})
		expired, err := expiredAuth.GenerateToken(user.ID)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		w := doRequest(t, router, "Bearer "+expired)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if code := errorCode(t, w); code != response.ErrTokenExpired {
			t.Errorf("code = %s, want %s", code, response.ErrTokenExpired)
		}
	})

	t.Run("DeletedUser", func(t *testing.T) {
		orphan, err := auth.GenerateToken(uuid.New())
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		w := doRequest(t, router, "Bearer "+orphan)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if code := errorCode(t, w); code != response.ErrTokenInvalid {
			t.Errorf("code = %s, want %s", code, response.ErrTokenInvalid)
		}
	})
}
