package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"hospital-triage/pkg"
)

// classifyInstruction turns a chat model into a zero-shot classifier.  The
// model must score every candidate label so the output cardinality equals
// the candidate set.
const classifyInstruction = "You are a zero-shot text classifier for medical triage. " +
	"Score how strongly the text matches each candidate label with a number between 0 and 1. " +
	"Respond with JSON only, in the form {\"scores\": {\"<label>\": <score>, ...}}, " +
	"covering every candidate label exactly once."

// OpenAIClassifier scores candidate labels against an input text using the
// OpenAI chat completion API.  It is constructed once at process start and
// is safe for concurrent use.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

// NewOpenAIClassifier constructs an OpenAI-backed classifier.  An empty
// model falls back to a small default.
func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Classify sends the text and candidate labels to the chat completion API
// and returns one prediction per candidate label, sorted by descending
// score.  Ties keep candidate order.  Any transport or parse failure is
// returned as-is; there is no retry.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string, candidateLabels []string) ([]pkg.Prediction, error) {
	if c.client == nil {
		return nil, errors.New("openai client not initialized")
	}
	if len(candidateLabels) == 0 {
		return nil, errors.New("no candidate labels")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifyInstruction},
			{
				Role: openai.ChatMessageRoleUser,
				Content: "Text:\n" + text + "\n\nCandidate labels: " +
					strings.Join(candidateLabels, ", "),
			},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion")
	}
	return parseScores(resp.Choices[0].Message.Content, candidateLabels)
}

// parseScores decodes the model's JSON reply into predictions.  Scores are
// clamped into [0,1], candidate labels the model skipped score zero, and
// labels outside the candidate set are dropped.
func parseScores(raw string, candidateLabels []string) ([]pkg.Prediction, error) {
	var payload struct {
		Scores map[string]float64 `json:"scores"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("malformed classifier response: %w", err)
	}
	if len(payload.Scores) == 0 {
		return nil, errors.New("classifier returned no scores")
	}

	preds := make([]pkg.Prediction, 0, len(candidateLabels))
	for _, label := range candidateLabels {
		score := payload.Scores[label]
		if score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}
		preds = append(preds, pkg.Prediction{Label: label, Score: score})
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Score > preds[j].Score
	})
	return preds, nil
}

// extractJSON trims any prose around the first top-level JSON object.  Some
// models wrap JSON in code fences even when asked not to.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
