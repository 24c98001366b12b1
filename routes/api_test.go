package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chunponglai/tricks-planner/config"
	"github.com/chunponglai/tricks-planner/models"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		DatabaseURL: ":memory:",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	return SetupRouter(cfg, db, zap.NewNop()), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func register(t *testing.T, r *gin.Engine, email, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	w := doJSON(t, r, http.MethodPost, "/auth/register", body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", email, w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, w, &resp)
	if resp.AccessToken == "" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected login response: %s", w.Body.String())
	}
	return resp.AccessToken
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	register(t, r, email, password)
	return login(t, r, email, password)
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	register(t, r, "test@example.com", "secret123")
	token := login(t, r, "test@example.com", "secret123")
	if token == "" {
		t.Fatal("empty token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	register(t, r, "test@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/auth/register", `{"email":"test@example.com","password":"other"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d, want 400", w.Code)
	}

	// First registration's credentials still log in.
	login(t, r, "test@example.com", "secret123")
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _ := newTestServer(t)

	register(t, r, "test@example.com", "secret123")

	form := url.Values{"username": {"test@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password login: status %d, want 401", w.Code)
	}
}

func TestMe(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "test@example.com", "secret123")

	w := doJSON(t, r, http.MethodGet, "/me", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("/me: status %d", w.Code)
	}
	var user struct {
		Email string `json:"email"`
	}
	decodeBody(t, w, &user)
	if user.Email != "test@example.com" {
		t.Errorf("email = %q, want test@example.com", user.Email)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	for _, path := range []string{"/me", "/tricks", "/templates", "/challenges", "/training-plans", "/sync"} {
		w := doJSON(t, r, http.MethodGet, path, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d, want 401", path, w.Code)
		}
		w = doJSON(t, r, http.MethodGet, path, "", "not-a-real-token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s with bogus token: status %d, want 401", path, w.Code)
		}
	}
}

func TestTricksCRUD(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "a@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/tricks", `{"name":"Kickflip","category":"Flips","difficulty":"medium"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create trick: status %d, body %s", w.Code, w.Body.String())
	}
	var trick models.Trick
	decodeBody(t, w, &trick)
	if trick.ID == 0 || trick.Name != "Kickflip" {
		t.Fatalf("unexpected trick: %+v", trick)
	}

	w = doJSON(t, r, http.MethodGet, "/tricks", "", token)
	var tricks []models.Trick
	decodeBody(t, w, &tricks)
	if len(tricks) != 1 {
		t.Fatalf("list returned %d tricks, want 1", len(tricks))
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/tricks/%d", trick.ID), "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete trick: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/tricks", "", token)
	decodeBody(t, w, &tricks)
	if len(tricks) != 0 {
		t.Fatalf("list after delete returned %d tricks, want 0", len(tricks))
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/tricks/%d", trick.ID), "", token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: status %d, want 404", w.Code)
	}
}

func TestTrickOwnershipIsolation(t *testing.T) {
	r, _ := newTestServer(t)
	tokenA := registerAndLogin(t, r, "a@example.com", "secret123")
	tokenB := registerAndLogin(t, r, "b@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/tricks", `{"name":"Kickflip","category":"Flips"}`, tokenA)
	var trick models.Trick
	decodeBody(t, w, &trick)

	w = doJSON(t, r, http.MethodGet, "/tricks", "", tokenB)
	var tricks []models.Trick
	decodeBody(t, w, &tricks)
	if len(tricks) != 0 {
		t.Fatalf("user B sees %d of A's tricks", len(tricks))
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/tricks/%d", trick.ID), "", tokenB)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-owner delete: status %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/tricks", "", tokenA)
	decodeBody(t, w, &tricks)
	if len(tricks) != 1 {
		t.Fatal("A's trick vanished after B's delete attempt")
	}
}

func TestTemplatesCRUDAndCascade(t *testing.T) {
	r, db := newTestServer(t)
	token := registerAndLogin(t, r, "test@example.com", "secret123")

	payload := `{"name":"Daily Warmup","items":[
		{"trick_name":"Ollie","category":"Old School","difficulty":"easy","target_count":5},
		{"trick_name":"Kickflip","category":"Flips","difficulty":"medium","target_count":5}
	]}`
	w := doJSON(t, r, http.MethodPost, "/templates", payload, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create template: status %d, body %s", w.Code, w.Body.String())
	}
	var template models.TrainingTemplate
	decodeBody(t, w, &template)
	if len(template.Items) != 2 {
		t.Fatalf("template has %d items, want 2", len(template.Items))
	}

	w = doJSON(t, r, http.MethodGet, "/templates", "", token)
	var templates []models.TrainingTemplate
	decodeBody(t, w, &templates)
	if len(templates) != 1 {
		t.Fatalf("list returned %d templates, want 1", len(templates))
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/templates/%d", template.ID), "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete template: status %d", w.Code)
	}

	// Items must not survive their template.
	var itemCount int64
	if err := db.Model(&models.TrainingTemplateItem{}).Where("template_id = ?", template.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 0 {
		t.Errorf("%d items survived template deletion", itemCount)
	}
}

func TestChallenges(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "test@example.com", "secret123")

	payload := `{"day":"2026-02-05","status":"notDone","combo_json":"[{\"name\":\"Kickflip\"}]"}`
	w := doJSON(t, r, http.MethodPost, "/challenges", payload, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create challenge: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/challenges", "", token)
	var challenges []models.Challenge
	decodeBody(t, w, &challenges)
	if len(challenges) != 1 {
		t.Fatalf("list returned %d challenges, want 1", len(challenges))
	}
	if challenges[0].Day != "2026-02-05" {
		t.Errorf("day = %q, want 2026-02-05", challenges[0].Day)
	}
}

func TestTrainingPlans(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "test@example.com", "secret123")

	payload := `{"day":"2026-02-05","items":[
		{"trick_name":"Manual","category":"Manuals","difficulty":"easy","target_count":5,"completed_count":2}
	]}`
	w := doJSON(t, r, http.MethodPost, "/training-plans", payload, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create plan: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/training-plans", "", token)
	var plans []models.DailyTrainingPlan
	decodeBody(t, w, &plans)
	if len(plans) != 1 || len(plans[0].Items) != 1 {
		t.Fatalf("list = %+v, want one plan with one item", plans)
	}
	if plans[0].Items[0].CompletedCount != 2 {
		t.Errorf("completed_count = %d, want 2", plans[0].Items[0].CompletedCount)
	}
}

func TestSyncRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "sync@example.com", "secret123")

	// Before any push the document is an empty default.
	w := doJSON(t, r, http.MethodGet, "/sync", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("initial pull: status %d", w.Code)
	}
	var initial map[string]json.RawMessage
	decodeBody(t, w, &initial)
	if string(initial["categories"]) != "[]" {
		t.Errorf("initial categories = %s, want []", initial["categories"])
	}

	payload := `{
		"categories":["Uncategorized","Flips"],
		"tricks":[{"id":"00000000-0000-0000-0000-000000000001","name":"Kickflip","category":"Flips","difficulty":"medium"}],
		"templates":[],
		"challenges":[],
		"trainingPlans":[]
	}`
	w = doJSON(t, r, http.MethodPut, "/sync", payload, token)
	if w.Code != http.StatusOK {
		t.Fatalf("push: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/sync", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("pull: status %d", w.Code)
	}
	var doc struct {
		Categories []string         `json:"categories"`
		Tricks     []map[string]any `json:"tricks"`
	}
	decodeBody(t, w, &doc)
	if len(doc.Categories) != 2 || doc.Categories[0] != "Uncategorized" {
		t.Errorf("categories = %v", doc.Categories)
	}
	if len(doc.Tricks) != 1 || doc.Tricks[0]["name"] != "Kickflip" {
		t.Errorf("tricks = %v", doc.Tricks)
	}
}

func TestFullFlow(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "flow@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/tricks", `{"name":"Kickflip","category":"Flips","difficulty":"medium"}`, token)
	var kickflip models.Trick
	decodeBody(t, w, &kickflip)

	doJSON(t, r, http.MethodPost, "/tricks", `{"name":"Ollie","category":"Old School","difficulty":"easy"}`, token)

	w = doJSON(t, r, http.MethodGet, "/tricks", "", token)
	var tricks []models.Trick
	decodeBody(t, w, &tricks)
	if len(tricks) != 2 {
		t.Fatalf("list returned %d tricks, want 2", len(tricks))
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/tricks/%d", kickflip.ID), "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/templates", `{"name":"Daily Warmup","items":[{"trick_name":"Ollie","category":"Old School","difficulty":"easy","target_count":5}]}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create template: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/challenges", `{"day":"2026-02-05","combo_json":"[]"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create challenge: status %d", w.Code)
	}
	var challenge models.Challenge
	decodeBody(t, w, &challenge)
	if challenge.Status != "notDone" {
		t.Errorf("challenge status = %q, want notDone", challenge.Status)
	}

	w = doJSON(t, r, http.MethodPost, "/training-plans", `{"day":"2026-02-05","items":[]}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("create plan: status %d", w.Code)
	}
}
