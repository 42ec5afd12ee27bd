// Package ollama implements the flashcard generator port against a local
// Ollama server through LangchainGo.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fdemusso/FlashCardIA/internal/config"
	"github.com/fdemusso/FlashCardIA/internal/domain"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// Generator calls an Ollama model to produce flashcard JSON for one window
// of text. Any failure is the caller's signal for "zero records for this
// window"; the generator itself never validates the reply.
type Generator struct {
	llm            *ollamaLLM.LLM
	httpClient     *http.Client
	serverURL      string
	model          string
	temperature    float64
	maxTokens      int
	cardsPerWindow int
	log            *zap.Logger
}

// NewGenerator creates a Generator from the Ollama configuration.
func NewGenerator(cfg config.OllamaConfig, cardsPerWindow int, log *zap.Logger) (*Generator, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	llm, err := ollamaLLM.New(
		ollamaLLM.WithServerURL(cfg.ServerURL),
		ollamaLLM.WithModel(cfg.Model),
		ollamaLLM.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo Ollama client: %w", err)
	}

	return &Generator{
		llm:            llm,
		httpClient:     httpClient,
		serverURL:      strings.TrimRight(cfg.ServerURL, "/"),
		model:          cfg.Model,
		temperature:    cfg.Temperature,
		maxTokens:      cfg.MaxTokens,
		cardsPerWindow: cardsPerWindow,
		log:            log,
	}, nil
}

// Generate sends the window text to the model and returns its raw reply.
func (g *Generator) Generate(ctx context.Context, windowText string) (string, error) {
	prompt := g.buildPrompt(windowText)
	g.log.Debug("Sending prompt to Ollama",
		zap.String("model", g.model),
		zap.Int("prompt_length", len(prompt)),
	)

	response, err := g.llm.Call(ctx, prompt,
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("ollama call failed: %w", err)
	}

	g.log.Debug("Raw reply received from Ollama", zap.Int("length", len(response)))
	return response, nil
}

// Status checks that the Ollama server is reachable and that the configured
// model is installed. It never returns an error: failures are reported in
// the status itself.
func (g *Generator) Status(ctx context.Context) domain.ModelStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.serverURL+"/api/tags", nil)
	if err != nil {
		return domain.ModelStatus{Err: err.Error()}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.ModelStatus{Err: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ModelStatus{Err: fmt.Sprintf("unexpected status %d from ollama", resp.StatusCode)}
	}

	var payload struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ModelStatus{Err: err.Error()}
	}

	status := domain.ModelStatus{Available: true}
	for _, m := range payload.Models {
		status.Models = append(status.Models, m.Name)
		if m.Name == g.model {
			status.ModelAvailable = true
		}
	}
	return status
}

// buildPrompt asks for a fixed number of flashcards as a bare JSON array,
// with one example per kind. Multiple-choice answers are requested as a
// zero-based option index, which survives duplicate option text.
func (g *Generator) buildPrompt(windowText string) string {
	return fmt.Sprintf(`Analizza questo testo e crea %d flashcard in formato JSON.
Per ogni flashcard, usa uno dei seguenti tipi:
- "aperta": per domande che richiedono una risposta libera
- "vero_falso": per affermazioni da verificare (risposta deve essere "vero" o "falso")
- "multipla": per domande con 4 opzioni di risposta (risposta deve essere l'INDICE dell'opzione corretta: 0, 1, 2, o 3)

%s

Rispondi SOLO con array JSON senza markdown, per esempio:
[
  {
    "domanda": "Qual è la capitale d'Italia?",
    "risposta": "Roma",
    "tipo": "aperta",
    "punteggio": 3
  },
  {
    "domanda": "La Terra è piatta",
    "risposta": "falso",
    "tipo": "vero_falso",
    "punteggio": 2,
    "giustificazione": "La Terra ha una forma sferica, come dimostrato da secoli di osservazioni astronomiche"
  },
  {
    "domanda": "Quale di questi è un pianeta?",
    "risposta": 0,
    "tipo": "multipla",
    "opzioni": ["Marte", "Luna", "Sole", "Stella"],
    "punteggio": 3,
    "giustificazione": "Marte è l'unico pianeta tra le opzioni: la Luna è un satellite e il Sole è una stella"
  }
]

REGOLE IMPORTANTI:
1. Per tipo "multipla":
   - La risposta DEVE essere un numero (0, 1, 2, o 3) che rappresenta l'indice dell'opzione corretta
   - Le opzioni devono essere 4
   - AGGIUNGI sempre il campo "giustificazione" che spiega perché quella è la risposta corretta
2. Per tipo "vero_falso":
   - La risposta DEVE essere esattamente "vero" o "falso"
   - AGGIUNGI sempre il campo "giustificazione" che spiega perché l'affermazione è vera o falsa
3. Per tipo "aperta":
   - La risposta può essere qualsiasi testo
   - NON aggiungere il campo "giustificazione" per questo tipo`, g.cardsPerWindow, windowText)
}

// Static assertion that Generator implements the domain port.
var _ domain.FlashcardGenerator = (*Generator)(nil)
