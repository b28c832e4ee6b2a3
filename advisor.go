package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// errAdvisorUnavailable marks any failed remote call — network, auth, quota,
// or a malformed response. Handlers absorb it into advisorFallback; it never
// propagates past the HTTP boundary.
var errAdvisorUnavailable = errors.New("advisor unavailable")

// advisorFallback is the fixed string shown whenever the remote provider
// cannot be reached. The dashboard stays usable either way.
const advisorFallback = "The AI advisor is unavailable right now. " +
	"For personalized nutrition advice, consider consulting a registered dietitian."

/* ─── Prompt constants ───────────────────────────────────────────────── */

const askSystemPrompt = `You are a certified nutrition and fitness assistant.
Answer the user's question with practical, evidence-based advice in a few short
paragraphs. Plain text only, no markdown. If the question needs medical
judgement, say so and recommend a professional.`

// planMealSystemPromptTemplate embeds the engine outputs so the plan matches
// the user's computed targets rather than generic averages.
const planMealSystemPromptTemplate = `You are a meal planning assistant. Build a one-day meal plan
(breakfast, lunch, dinner, snacks) for this person:
- Diet type: %s
- Daily calorie target: %.0f kcal
- Macro targets: %.0fg carbs, %.0fg protein, %.0fg fat
- Allergies/restrictions: %s
- Medical conditions: %s

Keep each meal to one or two sentences with an estimated calorie count.
Plain text only, no markdown.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// chatMessage is a single message in the chat completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// advisor is the one remote capability the dashboard consumes: a chat
// completion endpoint. Constructed once in main and handed to the Handler —
// no package-level client or config. A nil apiKey/model/baseURL never gets
// here; newAdvisor rejects incomplete settings at startup.
type advisor struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// newAdvisor builds the adapter from the three external settings. Any missing
// one is a configuration error, reported once at startup rather than per call.
func newAdvisor(baseURL, model, apiKey string) (*advisor, error) {
	var missing []string
	if baseURL == "" {
		missing = append(missing, "OPENAI_BASE_URL")
	}
	if model == "" {
		missing = append(missing, "OPENAI_MODEL")
	}
	if apiKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("advisor not configured: missing %s", strings.Join(missing, ", "))
	}
	return &advisor{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		// Uses raw net/http to avoid pulling in the OpenAI SDK. The client
		// timeout is the only abort path — no retries, no caller-side cancel.
		client: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// chat sends one system/user message pair and returns the raw content string
// from the first choice. A single failed call yields errAdvisorUnavailable
// immediately — no retries, no backoff.
func (a *advisor) chat(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model: a.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", errAdvisorUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", a.baseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", errAdvisorUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: http request: %v", errAdvisorUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", errAdvisorUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", errAdvisorUnavailable, resp.StatusCode, string(respBytes))
	}

	// Extract choices[0].message.content
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", errAdvisorUnavailable, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", errAdvisorUnavailable)
	}

	return result.Choices[0].Message.Content, nil
}

// ask answers a free-text nutrition question, with optional context text
// (typically the rendered engine outputs) appended to the user prompt.
func (a *advisor) ask(ctx context.Context, question, contextText string) (string, error) {
	userPrompt := question
	if contextText != "" {
		userPrompt += "\n\nContext about me:\n" + contextText
	}
	return a.chat(ctx, askSystemPrompt, userPrompt, 600, 0.7)
}

// planMeal asks for a one-day meal plan tailored to the profile and its
// computed targets. Engine outputs feed the prompt; nothing flows back.
func (a *advisor) planMeal(ctx context.Context, p profile, r nutritionResult) (string, error) {
	allergies := p.Allergies
	if allergies == "" {
		allergies = "none"
	}
	conditions := p.MedicalConditions
	if conditions == "" {
		conditions = "none"
	}
	systemPrompt := fmt.Sprintf(planMealSystemPromptTemplate,
		p.DietType, r.DailyCalorieTarget,
		r.Macros["Carbs"].Grams, r.Macros["Protein"].Grams, r.Macros["Fat"].Grams,
		allergies, conditions)
	return a.chat(ctx, systemPrompt, "Please build my meal plan for today.", 800, 0.7)
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// askAdvisor handles POST /api/advisor/ask. Any advisor failure — including
// a never-configured advisor — degrades to the fixed fallback answer with
// 200, so the rest of the dashboard keeps working.
func (h *Handler) askAdvisor(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "question is required")
		return
	}

	if h.advisor == nil {
		c.JSON(http.StatusOK, gin.H{"answer": advisorFallback, "degraded": true})
		return
	}

	answer, err := h.advisor.ask(c.Request.Context(), req.Question, req.Context)
	if err != nil {
		log.Printf("[advisor] ask failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"answer": advisorFallback, "degraded": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer, "degraded": false})
}

// planMealWithAdvisor handles POST /api/advisor/meal-plan. The body is a full
// profile; the engine runs first so the prompt carries computed targets.
func (h *Handler) planMealWithAdvisor(c *gin.Context) {
	var p profile
	if err := c.ShouldBindJSON(&p); err != nil {
		apiError(c, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}

	result, err := evaluateProfile(p)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	if h.advisor == nil {
		c.JSON(http.StatusOK, gin.H{"plan": advisorFallback, "degraded": true})
		return
	}

	plan, err := h.advisor.planMeal(c.Request.Context(), p, result)
	if err != nil {
		log.Printf("[advisor] meal plan failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"plan": advisorFallback, "degraded": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan, "degraded": false})
}
