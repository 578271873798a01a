// Package analysis extracts structured ledger entries from the free-text
// messages drivers send in ("abasteci 300 reais no posto placa abc1234").
package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

const systemPrompt = `Você é um assistente de lançamentos financeiros de uma transportadora brasileira.
O usuário descreve um gasto ou receita em linguagem natural e você extrai um JSON estruturado.

Responda APENAS com JSON neste formato, sem texto adicional:
{
  "isComplete": true/false,
  "aiFeedback": "pergunta curta quando faltar informação",
  "type": "fuel" | "freight" | "general",
  "amount": 0,
  "description": "",
  "date": "YYYY-MM-DD",
  "truckPlate": "",
  "mileage": 0,
  "liters": 0,
  "pricePerLiter": 0,
  "client": "",
  "cargoTypeName": "",
  "startKm": 0,
  "endKm": 0,
  "weight": 0,
  "volume": 0,
  "categoryName": ""
}

Regras:
- "fuel" para abastecimentos, "freight" para fretes, "general" para o resto.
- Use "isComplete": false e preencha "aiFeedback" com UMA pergunta objetiva quando faltar dado essencial.
- Valores em reais, sem símbolo. Vírgula decimal vira ponto.
- Se o usuário não der a data, use a data de hoje informada no contexto.
- Escolha categoryName, truckPlate e cargoTypeName apenas dentre os listados no contexto.`

// OpenAIAnalyzer asks a chat model to structure the entry. Output is JSON
// only; anything unparseable is treated as a failure so nothing half-read
// ever reaches the ledger.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

var _ interfaces.IEntryAnalyzer = (*OpenAIAnalyzer)(nil)

func NewOpenAIAnalyzer(apiKey, model string) (*OpenAIAnalyzer, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("entry analysis requires OPENAI_API_KEY")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAnalyzer{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log.With().Str("component", "analyzer").Logger(),
	}, nil
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, req interfaces.AnalyzeRequest) (entities.EntrySuggestion, error) {
	userPrompt := buildUserPrompt(req)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.1,
		MaxTokens:   1000,
	})
	if err != nil {
		return entities.EntrySuggestion{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return entities.EntrySuggestion{}, fmt.Errorf("no response choices from model")
	}

	cleaned := stripMarkdownFences(resp.Choices[0].Message.Content)
	var suggestion entities.EntrySuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		a.log.Warn().Err(err).Str("response", cleaned).Msg("model response is not valid JSON")
		return entities.EntrySuggestion{}, fmt.Errorf("parsing model response: %w", err)
	}
	return suggestion, nil
}

func buildUserPrompt(req interfaces.AnalyzeRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Data de hoje: %s\n", req.Today)
	fmt.Fprintf(&sb, "Categorias: %s\n", strings.Join(req.CategoryNames, ", "))
	fmt.Fprintf(&sb, "Placas da frota: %s\n", strings.Join(req.TruckPlates, ", "))
	fmt.Fprintf(&sb, "Tipos de carga: %s\n", strings.Join(req.CargoTypeNames, ", "))
	if req.PreviousContext != "" {
		fmt.Fprintf(&sb, "Contexto da conversa anterior: %s\n", req.PreviousContext)
	}
	fmt.Fprintf(&sb, "\nMensagem do usuário: %s", req.Text)
	return sb.String()
}

// stripMarkdownFences removes the ```json wrapper some models insist on.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
