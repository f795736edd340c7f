package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"hostel-management-api/middleware"
	"hostel-management-api/models"
	"hostel-management-api/store"

	"github.com/gin-gonic/gin"
)

// fakeIntents stands in for the Stripe gateway
type fakeIntents struct {
	err error
}

func (f *fakeIntents) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "cs_test_secret", nil
}

type testEnv struct {
	router *gin.Engine
	store  *store.Store
	gw     *fakeIntents
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.SeedPlans(); err != nil {
		t.Fatalf("seed plans: %v", err)
	}
	gw := &fakeIntents{}
	r := gin.New()
	SetupRoutes(r, st, gw)
	return &testEnv{router: r, store: st, gw: gw}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateToken(email)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (e *testEnv) addAdmin(t *testing.T, email string) string {
	t.Helper()
	if _, err := e.store.CreateUserIfAbsent(&models.User{Email: email, Role: models.RoleAdmin}); err != nil {
		t.Fatal(err)
	}
	return e.tokenFor(t, email)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return out
}

func TestRegisterIdempotent(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/users", "", gin.H{"name": "Asha", "email": "asha@example.com"})
	if w.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d, want 201", w.Code)
	}
	if decodeBody(t, w)["insertedId"] == nil {
		t.Fatal("first register should return an insertedId")
	}

	w = e.do(t, http.MethodPost, "/users", "", gin.H{"name": "Different Name", "email": "asha@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("repeat register: status = %d, want 200", w.Code)
	}
	if id, present := decodeBody(t, w)["insertedId"]; !present || id != nil {
		t.Error("repeat register must return an explicitly null insertedId")
	}
}

func TestProtectedRouteNoHeader(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/meals", "", gin.H{"title": "Sneaky Dish", "price": 5})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	meals, err := e.store.ListMeals(store.MealFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(meals) != 0 {
		t.Error("rejected request must not mutate the store")
	}
}

func TestAdminRouteNonAdminToken(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.store.CreateUserIfAbsent(&models.User{Email: "member@example.com"}); err != nil {
		t.Fatal(err)
	}
	token := e.tokenFor(t, "member@example.com")

	w := e.do(t, http.MethodPost, "/meals", token, gin.H{"title": "Sneaky Dish", "price": 5})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	meals, err := e.store.ListMeals(store.MealFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(meals) != 0 {
		t.Error("rejected request must not mutate the store")
	}
}

func TestAdminCreatesAndListsFilteredMeals(t *testing.T) {
	e := newTestEnv(t)
	token := e.addAdmin(t, "admin@example.com")

	for _, m := range []gin.H{
		{"title": "Cheap Snack", "price": 3.0, "category": "Snack"},
		{"title": "Mid Meal", "price": 7.0, "category": "Lunch"},
		{"title": "Fancy Dinner", "price": 20.0, "category": "Dinner"},
	} {
		if w := e.do(t, http.MethodPost, "/meals", token, m); w.Code != http.StatusCreated {
			t.Fatalf("create meal: status = %d (%s)", w.Code, w.Body.String())
		}
	}

	w := e.do(t, http.MethodGet, "/meals?minPrice=5&maxPrice=10", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["count"].(float64) != 1 {
		t.Errorf("price filter 5..10: count = %v, want 1", body["count"])
	}
}

func TestMealLikeAnonymousAndBadID(t *testing.T) {
	e := newTestEnv(t)
	token := e.addAdmin(t, "admin@example.com")
	if w := e.do(t, http.MethodPost, "/meals", token, gin.H{"title": "Liked", "price": 4.0}); w.Code != http.StatusCreated {
		t.Fatal(w.Body.String())
	}

	if w := e.do(t, http.MethodPatch, "/meal-like/1", "", nil); w.Code != http.StatusOK {
		t.Errorf("anonymous like: status = %d, want 200", w.Code)
	}
	if w := e.do(t, http.MethodPatch, "/meal-like/not-a-number", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want 400", w.Code)
	}

	meal, err := e.store.MealByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if meal.Likes != 1 {
		t.Errorf("likes = %d, want 1", meal.Likes)
	}
}

func TestPlanByNameSingleElementList(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/plans/Silver", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	plans := body["plans"].([]interface{})
	if len(plans) != 1 {
		t.Fatalf("expected a single-element list, got %d", len(plans))
	}
}

func TestAdminFlagSelfOnly(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.store.CreateUserIfAbsent(&models.User{Email: "me@example.com"}); err != nil {
		t.Fatal(err)
	}
	token := e.tokenFor(t, "me@example.com")

	w := e.do(t, http.MethodGet, "/users/admin/me@example.com", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("self check: status = %d, want 200", w.Code)
	}
	if decodeBody(t, w)["admin"] != false {
		t.Error("regular member should not be admin")
	}

	w = e.do(t, http.MethodGet, "/users/admin/other@example.com", token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("cross-user check: status = %d, want 403", w.Code)
	}
}

func TestPaymentHistoryOwnerOnly(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, "payer@example.com")

	w := e.do(t, http.MethodGet, "/payment-hostory/payer@example.com", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("own history: status = %d, want 200", w.Code)
	}
	w = e.do(t, http.MethodGet, "/payment-hostory/victim@example.com", token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("other user's history: status = %d, want 403", w.Code)
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	e := newTestEnv(t)
	token := e.tokenFor(t, "payer@example.com")

	w := e.do(t, http.MethodPost, "/create-payment-intent", token, gin.H{"price": 19.99})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["clientSecret"] != "cs_test_secret" {
		t.Error("response should carry only the client secret")
	}

	e.gw.err = errors.New("stripe is down")
	w = e.do(t, http.MethodPost, "/create-payment-intent", token, gin.H{"price": 19.99})
	if w.Code != http.StatusBadGateway {
		t.Errorf("gateway failure: status = %d, want 502", w.Code)
	}
}

func TestAdminStatsEmptyRevenue(t *testing.T) {
	e := newTestEnv(t)
	token := e.addAdmin(t, "admin@example.com")

	w := e.do(t, http.MethodGet, "/admin-stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["revenue"].(float64) != 0 {
		t.Errorf("revenue = %v, want 0", body["revenue"])
	}
	if body["users"].(float64) != 1 {
		t.Errorf("users = %v, want 1", body["users"])
	}
}

func TestRequestLifecycle(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.addAdmin(t, "admin@example.com")
	if w := e.do(t, http.MethodPost, "/meals", adminToken, gin.H{"title": "Requested Dish", "price": 6.0}); w.Code != http.StatusCreated {
		t.Fatal(w.Body.String())
	}

	userToken := e.tokenFor(t, "hungry@example.com")
	w := e.do(t, http.MethodPost, "/meal/request", userToken, gin.H{"meal_id": 1, "user_name": "Hungry"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create request: status = %d (%s)", w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodPatch, "/request-served/1", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("serve: status = %d (%s)", w.Code, w.Body.String())
	}

	// Serving twice violates the lifecycle
	w = e.do(t, http.MethodPatch, "/request-served/1", adminToken, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("double serve: status = %d, want 422", w.Code)
	}

	// Owner deletes their own request; a stranger cannot
	stranger := e.tokenFor(t, "stranger@example.com")
	if w := e.do(t, http.MethodDelete, "/delete/request-mela/1", stranger, nil); w.Code != http.StatusForbidden {
		t.Errorf("stranger delete: status = %d, want 403", w.Code)
	}
	if w := e.do(t, http.MethodDelete, "/delete/request-mela/1", userToken, nil); w.Code != http.StatusOK {
		t.Errorf("owner delete: status = %d, want 200", w.Code)
	}
}

func TestReviewOwnership(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.addAdmin(t, "admin@example.com")
	if w := e.do(t, http.MethodPost, "/meals", adminToken, gin.H{"title": "Reviewed Dish", "price": 6.0}); w.Code != http.StatusCreated {
		t.Fatal(w.Body.String())
	}

	author := e.tokenFor(t, "author@example.com")
	w := e.do(t, http.MethodPost, "/reviews", author, gin.H{"meal_id": 1, "text": "Tasty", "user_name": "Author"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create review: status = %d (%s)", w.Code, w.Body.String())
	}

	stranger := e.tokenFor(t, "stranger@example.com")
	if w := e.do(t, http.MethodPatch, "/update-review/1", stranger, gin.H{"text": "Gross"}); w.Code != http.StatusForbidden {
		t.Errorf("stranger update: status = %d, want 403", w.Code)
	}
	if w := e.do(t, http.MethodPatch, "/update-review/1", author, gin.H{"text": "Very tasty"}); w.Code != http.StatusOK {
		t.Errorf("owner update: status = %d, want 200", w.Code)
	}

	// Admin removes any review through the privileged path
	if w := e.do(t, http.MethodDelete, "/admin-delete-review/1", adminToken, nil); w.Code != http.StatusOK {
		t.Errorf("admin delete: status = %d, want 200", w.Code)
	}
}

func TestPromoteRouteIsGuarded(t *testing.T) {
	e := newTestEnv(t)
	if _, err := e.store.CreateUserIfAbsent(&models.User{Email: "member@example.com"}); err != nil {
		t.Fatal(err)
	}

	// Unauthenticated and non-admin callers cannot grant roles
	if w := e.do(t, http.MethodPatch, "/users/admin/1", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous promote: status = %d, want 401", w.Code)
	}
	member := e.tokenFor(t, "member@example.com")
	if w := e.do(t, http.MethodPatch, "/users/admin/1", member, nil); w.Code != http.StatusForbidden {
		t.Errorf("member promote: status = %d, want 403", w.Code)
	}

	admin := e.addAdmin(t, "admin@example.com")
	if w := e.do(t, http.MethodPatch, "/users/admin/1", admin, nil); w.Code != http.StatusOK {
		t.Errorf("admin promote: status = %d, want 200", w.Code)
	}
	isAdmin, err := e.store.IsAdmin("member@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !isAdmin {
		t.Error("member should be admin after promotion")
	}
}
