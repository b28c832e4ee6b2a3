package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// setupAdvisorTest creates a Gin router backed by a mock chat-completions
// server and a temp-dir food log store, plus a function to set the mock
// response for the next call.
func setupAdvisorTest(t *testing.T) (*gin.Engine, *httptest.Server, func(int, interface{})) {
	t.Helper()

	var mockStatus int
	var mockBody interface{}

	mockChat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(mockBody)
	}))
	t.Cleanup(mockChat.Close)

	adv, err := newAdvisor(mockChat.URL, "gpt-4o-mini", "test-key")
	if err != nil {
		t.Fatalf("newAdvisor failed: %v", err)
	}

	gin.SetMode(gin.TestMode)
	h := &Handler{
		store:   newFoodLogStore(filepath.Join(t.TempDir(), "food_log.json")),
		advisor: adv,
	}
	router := gin.New()
	h.registerRoutes(router)

	setMock := func(status int, body interface{}) {
		mockStatus = status
		mockBody = body
	}
	return router, mockChat, setMock
}

// doJSONRequest sends a request with a JSON body through the router.
func doJSONRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// chatCompletionResponse wraps content in the chat completions response shape
// (choices[0].message.content).
func chatCompletionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

/* ─── Constructor ────────────────────────────────────────────────────── */

// TestNewAdvisor_MissingSettings verifies each of the three settings is
// required and the error names the missing one.
func TestNewAdvisor_MissingSettings(t *testing.T) {
	cases := []struct {
		name          string
		baseURL       string
		model         string
		key           string
		wantMentioned string
	}{
		{"no base URL", "", "gpt-4o-mini", "k", "OPENAI_BASE_URL"},
		{"no model", "http://x", "", "k", "OPENAI_MODEL"},
		{"no key", "http://x", "gpt-4o-mini", "", "OPENAI_API_KEY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newAdvisor(tc.baseURL, tc.model, tc.key)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantMentioned) {
				t.Errorf("error %q does not mention %s", err, tc.wantMentioned)
			}
		})
	}
}

/* ─── chat ───────────────────────────────────────────────────────────── */

// TestChat_RemoteFailure verifies any non-200 yields errAdvisorUnavailable.
func TestChat_RemoteFailure(t *testing.T) {
	mock := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer mock.Close()

	adv, err := newAdvisor(mock.URL, "gpt-4o-mini", "test-key")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := adv.chat(ctx, "s", "u", 100, 0); !errors.Is(err, errAdvisorUnavailable) {
		t.Errorf("expected errAdvisorUnavailable, got %v", err)
	}
}

/* ─── ask handler ────────────────────────────────────────────────────── */

func TestAsk_Success(t *testing.T) {
	router, _, setMock := setupAdvisorTest(t)
	setMock(http.StatusOK, chatCompletionResponse("Eat a banana with peanut butter beforehand."))

	w := doJSONRequest(router, "POST", "/api/advisor/ask",
		`{"question":"What should I eat before a workout?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Answer   string `json:"answer"`
		Degraded bool   `json:"degraded"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Degraded {
		t.Error("expected degraded=false on success")
	}
	if !strings.Contains(resp.Answer, "banana") {
		t.Errorf("unexpected answer: %q", resp.Answer)
	}
}

// TestAsk_RemoteError verifies the failure is absorbed at the boundary: the
// endpoint still answers 200 with the fixed fallback string.
func TestAsk_RemoteError(t *testing.T) {
	router, _, setMock := setupAdvisorTest(t)
	setMock(http.StatusInternalServerError, map[string]string{"error": "server error"})

	w := doJSONRequest(router, "POST", "/api/advisor/ask", `{"question":"hydration tips?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 even on advisor failure, got %d", w.Code)
	}
	var resp struct {
		Answer   string `json:"answer"`
		Degraded bool   `json:"degraded"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Answer != advisorFallback {
		t.Errorf("answer = %q, want the fixed fallback", resp.Answer)
	}
	if !resp.Degraded {
		t.Error("expected degraded=true")
	}
}

// TestAsk_NoAdvisorConfigured verifies a nil advisor (missing settings at
// startup) degrades the same way instead of crashing.
func TestAsk_NoAdvisorConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{store: newFoodLogStore(filepath.Join(t.TempDir(), "food_log.json"))}
	router := gin.New()
	h.registerRoutes(router)

	w := doJSONRequest(router, "POST", "/api/advisor/ask", `{"question":"anything"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Answer string `json:"answer"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Answer != advisorFallback {
		t.Errorf("answer = %q, want the fixed fallback", resp.Answer)
	}
}

func TestAsk_MissingQuestion(t *testing.T) {
	router, _, _ := setupAdvisorTest(t)
	w := doJSONRequest(router, "POST", "/api/advisor/ask", `{"question":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

/* ─── meal-plan handler ──────────────────────────────────────────────── */

const validProfileJSON = `{
	"gender": "Male", "age": 30, "weight_kg": 70, "height_cm": 175,
	"activity_level": "Sedentary", "diet_type": "Keto", "goal": "Lose Weight",
	"allergies": "nuts"
}`

func TestPlanMeal_Success(t *testing.T) {
	router, _, setMock := setupAdvisorTest(t)
	setMock(http.StatusOK, chatCompletionResponse("Breakfast: eggs and avocado (400 kcal)..."))

	w := doJSONRequest(router, "POST", "/api/advisor/meal-plan", validProfileJSON)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Plan     string `json:"plan"`
		Degraded bool   `json:"degraded"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Degraded || !strings.Contains(resp.Plan, "Breakfast") {
		t.Errorf("unexpected plan response: %+v", resp)
	}
}

// TestPlanMeal_RemoteError verifies that the engine still ran (a bad profile
// would be 400) but the advisor failure degrades to the fallback plan.
func TestPlanMeal_RemoteError(t *testing.T) {
	router, _, setMock := setupAdvisorTest(t)
	setMock(http.StatusBadGateway, map[string]string{"error": "upstream down"})

	w := doJSONRequest(router, "POST", "/api/advisor/meal-plan", validProfileJSON)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Plan string `json:"plan"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Plan != advisorFallback {
		t.Errorf("plan = %q, want the fixed fallback", resp.Plan)
	}
}

func TestPlanMeal_InvalidProfile(t *testing.T) {
	router, _, _ := setupAdvisorTest(t)
	// Age below the accepted range — binding must reject before any remote call.
	w := doJSONRequest(router, "POST", "/api/advisor/meal-plan",
		`{"gender":"Male","age":15,"weight_kg":70,"height_cm":175,
		  "activity_level":"Sedentary","diet_type":"Keto","goal":"Lose Weight"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
