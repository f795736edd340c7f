package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"hostel-management-api/config"
	"hostel-management-api/models"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func authTestRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetEmail(c)})
	})
	r.GET("/admin-only", AuthRequired(), AdminRequired(st), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := authTestRouter(newTestStore(t))
	if w := doGet(r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredWrongScheme(t *testing.T) {
	r := authTestRouter(newTestStore(t))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong scheme: status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredMalformedToken(t *testing.T) {
	r := authTestRouter(newTestStore(t))
	if w := doGet(r, "/protected", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("malformed token: status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	r := authTestRouter(newTestStore(t))

	claims := Claims{
		Email: "late@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}
	if w := doGet(r, "/protected", expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredTamperedSignature(t *testing.T) {
	r := authTestRouter(newTestStore(t))

	claims := Claims{
		Email: "evil@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if w := doGet(r, "/protected", forged); w.Code != http.StatusUnauthorized {
		t.Errorf("bad signature: status = %d, want 401", w.Code)
	}
}

func TestAuthRequiredValidToken(t *testing.T) {
	r := authTestRouter(newTestStore(t))

	token, err := GenerateToken("ok@example.com")
	if err != nil {
		t.Fatal(err)
	}
	w := doGet(r, "/protected", token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.CreateUserIfAbsent(&models.User{Email: "admin@example.com", Role: models.RoleAdmin}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.CreateUserIfAbsent(&models.User{Email: "member@example.com"}); err != nil {
		t.Fatal(err)
	}
	r := authTestRouter(st)

	cases := []struct {
		name  string
		email string
		want  int
	}{
		{"admin passes", "admin@example.com", http.StatusOK},
		{"member forbidden", "member@example.com", http.StatusForbidden},
		{"unknown user forbidden", "ghost@example.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := GenerateToken(tc.email)
			if err != nil {
				t.Fatal(err)
			}
			if w := doGet(r, "/admin-only", token); w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
