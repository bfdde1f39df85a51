package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"costeo_propuestas/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultTimeout       = 2 * time.Minute
)

// GeminiConfig holds configuration for the Gemini gateway.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiGateway implements ITextOracle against the Gemini generateContent
// REST API.
//
// The upstream HTTP status of a failed call is recorded exactly once, in
// an interfaces.OracleError, at this boundary; callers never inspect
// error message text to classify failures.
type GeminiGateway struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.ITextOracle = (*GeminiGateway)(nil)

// NewGeminiGateway creates the gateway from environment configuration.
// Returns an error when no credential is configured so the composition
// root can leave the oracle nil and let requests fail with a clean
// service-unavailable instead of a mid-pipeline transport error.
func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	if isOracleMockEnabled() {
		log.Printf("[costeo][oracle] mock mode enabled")
		return &GeminiGateway{mockMode: true}, nil
	}
	if apiKey == "" {
		log.Printf("[costeo][oracle] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	cfg := GeminiConfig{
		APIKey:  apiKey,
		BaseURL: getenvDefault("GEMINI_ENDPOINT", defaultGeminiBaseURL),
		Model:   getenvDefault("GEMINI_MODEL", defaultGeminiModel),
	}
	return NewGeminiGatewayWithConfig(cfg), nil
}

func NewGeminiGatewayWithConfig(cfg GeminiConfig) *GeminiGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &GeminiGateway{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type geminiRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGateway) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.mockMode {
		log.Printf("[costeo][oracle] mock text call prompt_len=%d", len(prompt))
		return mockExtractionSummary, nil
	}
	return g.call(ctx, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
}

func (g *GeminiGateway) GenerateStructured(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	if g.mockMode {
		log.Printf("[costeo][oracle] mock structured call prompt_len=%d", len(prompt))
		return mockPlanJSON, nil
	}
	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if schema != nil {
		req.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		}
	}
	return g.call(ctx, req)
}

func (g *GeminiGateway) call(ctx context.Context, reqBody geminiRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	log.Printf("[costeo][oracle] call start model=%s payload_len=%d", g.model, len(payload))
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[costeo][oracle] transport failure err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[costeo][oracle] call failed status=%d body_len=%d", resp.StatusCode, len(body))
		return "", &interfaces.OracleError{
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 300),
		}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unexpected response shape: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	var out strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		out.WriteString(part.Text)
	}
	log.Printf("[costeo][oracle] call success output_len=%d", out.Len())
	return out.String(), nil
}

func isOracleMockEnabled() bool {
	for _, key := range []string{"ORACLE_MOCK", "GEMINI_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Canned responses used in mock mode so the whole pipeline can run
// without credentials in local development.
const (
	mockExtractionSummary = `- Actividad: interventoría técnica y administrativa
- Entregable: informes mensuales de avance
- Perfil: director de interventoría, tiempo parcial
- Perfil: ingeniero residente, tiempo completo
- Equipo: comisión de topografía con estación total`

	mockPlanJSON = `{
  "assumptions": ["Duración estimada de 6 meses", "Precios de catálogo de referencia"],
  "professionals": [
    {"role": "Director de interventoría", "profile": "Ing. civil, 10 años", "quantity": 1, "months": 6, "dedication": 0.5, "monthlyValue": 9000000, "justification": "dirección técnica"},
    {"role": "Ingeniero residente", "profile": "Ing. civil, 5 años", "quantity": 1, "months": 6, "dedication": 1, "monthlyValue": 6000000, "justification": "supervisión permanente"}
  ],
  "materials": [
    {"name": "Comisión de topografía", "unit": "mes", "quantity": 3, "unitPrice": 4500000, "justification": "verificación de cantidades"}
  ]
}`
)
