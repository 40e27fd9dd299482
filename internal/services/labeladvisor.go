package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
)

// LabelAdvisor proposes room mappings for facility labels the classifier did
// not recognize. It never runs inside the board pipeline: the board must stay
// deterministic, so suggestions go to an operator who extends the rule table
// by hand.
type LabelAdvisor struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// LabelSuggestion is one proposed mapping for an unrecognized facility label
type LabelSuggestion struct {
	Label      string   `json:"label"`
	RoomIDs    []string `json:"room_ids"`
	Confidence string   `json:"confidence"` // high|medium|low
	Rationale  string   `json:"rationale"`
}

// LabelAdvisorResponse represents the response for one advisory request
type LabelAdvisorResponse struct {
	RequestID    string            `json:"request_id"`
	Suggestions  []LabelSuggestion `json:"suggestions"`
	ProcessingMS int64             `json:"processing_ms"`
	TokensUsed   int               `json:"tokens_used"`
}

// NewLabelAdvisor creates a new label advisor client
func NewLabelAdvisor() *LabelAdvisor {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	return &LabelAdvisor{
		client:      openai.NewClient(apiKey),
		model:       "gpt-4o-mini",
		temperature: 0.1,
		maxTokens:   2000,
	}
}

// NewLabelAdvisorWithConfig creates a label advisor with custom configuration
func NewLabelAdvisorWithConfig(model string, temperature float32, maxTokens int) *LabelAdvisor {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	return &LabelAdvisor{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// SuggestRoomMappings asks for proposed room mappings for the given
// unrecognized labels
func (a *LabelAdvisor) SuggestRoomMappings(ctx context.Context, labels []string, roomIDs []string) (*LabelAdvisorResponse, error) {
	startTime := time.Now()

	if len(labels) == 0 {
		return nil, fmt.Errorf("labels cannot be empty")
	}

	requestID := uuid.New().String()

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       a.model,
			Temperature: a.temperature,
			MaxTokens:   a.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: a.buildSystemPrompt(roomIDs),
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: a.buildUserPrompt(labels),
				},
			},
		},
	)

	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices from OpenAI")
	}

	cleanedContent := a.cleanJSONResponse(resp.Choices[0].Message.Content)

	var suggestionsData struct {
		Suggestions []LabelSuggestion `json:"suggestions"`
	}

	err = json.Unmarshal([]byte(cleanedContent), &suggestionsData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse advisor response JSON: %w\nResponse: %s", err, cleanedContent)
	}

	return &LabelAdvisorResponse{
		RequestID:    requestID,
		Suggestions:  suggestionsData.Suggestions,
		ProcessingMS: time.Since(startTime).Milliseconds(),
		TokensUsed:   resp.Usage.TotalTokens,
	}, nil
}

// buildSystemPrompt creates the system prompt describing the room catalog
func (a *LabelAdvisor) buildSystemPrompt(roomIDs []string) string {
	return fmt.Sprintf(`You are helping map facility labels from a recreation center's reservation system to display room identifiers.

The display knows only these room IDs: %s

Gym courts 1, 2, 9 and 10 split into A and B halves. Fieldhouse courts 3-8 and turf quarters T1-T4 occupy the same physical floor and never coexist.

For each input label, propose the room IDs it most plausibly occupies. If a label clearly names something outside the gym and fieldhouse (a meeting room, the lobby, a pool), return an empty room list with a rationale.

OUTPUT FORMAT:
Return a JSON object with this exact structure:
{
  "suggestions": [
    {
      "label": "the input label verbatim",
      "room_ids": ["9A", "9B"],
      "confidence": "high|medium|low",
      "rationale": "one sentence explaining the proposal"
    }
  ]
}

Do not invent room IDs outside the list above. Prefer an empty room list over a guess you cannot justify.`, strings.Join(roomIDs, ", "))
}

// buildUserPrompt creates the user prompt with the labels to review
func (a *LabelAdvisor) buildUserPrompt(labels []string) string {
	return fmt.Sprintf(`The following facility labels appeared in the reservation export but matched no classification rule:

%s

Propose room mappings as structured JSON following the schema in the system prompt.`, strings.Join(labels, "\n"))
}

// GetModel returns the current OpenAI model being used
func (a *LabelAdvisor) GetModel() string {
	return a.model
}

// SetModel sets the OpenAI model to use
func (a *LabelAdvisor) SetModel(model string) {
	a.model = model
}

// cleanJSONResponse removes markdown code blocks from the model response
func (a *LabelAdvisor) cleanJSONResponse(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	}
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
	}

	return strings.TrimSpace(cleaned)
}
