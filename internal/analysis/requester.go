package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jmtoutdoors/vallas/internal/models"
)

// Fixed user-facing strings. The requester never returns an error to
// the caller; every failure path resolves to one of these.
const (
	MsgNotConfigured = "API Key no configurada. Define GEMINI_API_KEY o guárdala en el llavero del sistema."
	MsgNothingToDo   = "No hay inventario seleccionado para analizar."
	MsgEmptyAnswer   = "No se pudo generar el análisis."
	MsgCallFailed    = "Error al conectar con Gemini AI para el análisis."
)

// promptRecordCap bounds the request size: only the first records of
// the subset are embedded in the prompt.
const defaultRecordCap = 20

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Requester issues one-shot summarization calls against the Gemini
// generateContent endpoint. It is safe for reuse across requests; the
// single-in-flight discipline is the caller's responsibility.
type Requester struct {
	apiKey    string
	model     string
	recordCap int
	baseURL   string
	client    *http.Client
}

// Option configures a Requester.
type Option func(*Requester)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(r *Requester) { r.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Requester) { r.client = c }
}

// WithRecordCap overrides how many subset records are embedded in the prompt.
func WithRecordCap(n int) Option {
	return func(r *Requester) {
		if n > 0 {
			r.recordCap = n
		}
	}
}

// NewRequester creates a requester. An empty apiKey is a normal,
// handled condition: requests short-circuit to MsgNotConfigured.
func NewRequester(apiKey, model string, opts ...Option) *Requester {
	r := &Requester{
		apiKey:    apiKey,
		model:     model,
		recordCap: defaultRecordCap,
		baseURL:   defaultBaseURL,
		client:    &http.Client{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configured reports whether a credential is available.
func (r *Requester) Configured() bool {
	return r.apiKey != ""
}

// RequestAnalysis summarizes the subset through the external
// collaborator. It always returns displayable text: configuration
// absence, empty input and remote failures all degrade to fixed
// strings instead of errors. At most one network request is made.
func (r *Requester) RequestAnalysis(ctx context.Context, subset []models.Billboard) string {
	if !r.Configured() {
		return MsgNotConfigured
	}
	if len(subset) == 0 {
		return MsgNothingToDo
	}

	prompt := BuildPrompt(subset, r.recordCap)

	text, err := r.generateContent(ctx, prompt)
	if err != nil {
		return MsgCallFailed
	}
	if text == "" {
		return MsgEmptyAnswer
	}
	return text
}

// BuildPrompt renders the natural-language prompt for a subset,
// embedding at most cap records in store order.
func BuildPrompt(subset []models.Billboard, cap int) string {
	if cap <= 0 || cap > len(subset) {
		cap = len(subset)
	}

	var lines []string
	for _, b := range subset[:cap] {
		lines = append(lines, fmt.Sprintf("- %s (%s) en %s, %s. Audiencia diaria: %d. Ubicación: %s",
			b.Element, b.Type, b.District, b.Department, b.Audience, b.CommercialAddress))
	}

	return fmt.Sprintf(`Actúa como un estratega experto en publicidad OOH (Out of Home).
Analiza la siguiente lista filtrada de ubicaciones de publicidad exterior:

%s

1. Proporciona un breve "Pitch de Venta" de 2 oraciones sobre por qué este conjunto de ubicaciones es valioso para una marca.
2. Sugiere 3 tipos de industrias (rubros) ideales para pautar en estos espacios basándote en la audiencia y ubicación.

Formatea la respuesta en Markdown simple.`, strings.Join(lines, "\n"))
}

// Wire format of the generateContent endpoint.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *Requester) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", r.baseURL, r.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(data))
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("malformed provider response: %w", err)
	}

	var sb strings.Builder
	for _, cand := range parsed.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		break
	}
	return strings.TrimSpace(sb.String()), nil
}
