package llm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"ayursutra-server/internal/models"
)

// Client is the slice of the OpenAI API the suggester needs.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Outcome labels passed to the observer.
const (
	OutcomeModel    = "model"
	OutcomeFallback = "fallback"
)

// SuggestFunc matches services.SuggestFunc.
type SuggestFunc func(doctors []models.Doctor, history models.MedicalHistory) []models.Doctor

// Suggester asks a chat model which doctors suit a medical history. Any
// failure falls back to the configured heuristic.
type Suggester struct {
	client   Client
	model    string
	timeout  time.Duration
	fallback SuggestFunc
	observe  func(outcome string)
	log      *zap.Logger
}

// NewOpenAIClient constructs the OpenAI API client.
func NewOpenAIClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}

// NewSuggester builds a Suggester. observe may be nil.
func NewSuggester(client Client, model string, timeout time.Duration, fallback SuggestFunc, observe func(string), log *zap.Logger) *Suggester {
	if observe == nil {
		observe = func(string) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Suggester{
		client:   client,
		model:    model,
		timeout:  timeout,
		fallback: fallback,
		observe:  observe,
		log:      log,
	}
}

const systemPrompt = "You help patients of an Ayurvedic clinic choose a practitioner. " +
	"Reply with the ids of the relevant doctors as a comma-separated list of integers, most relevant first, and nothing else. " +
	"Reply with NONE if no doctor fits."

// Suggest satisfies services.SuggestFunc.
func (s *Suggester) Suggest(doctors []models.Doctor, history models.MedicalHistory) []models.Doctor {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	out, err := s.ask(ctx, doctors, history)
	if err != nil {
		s.log.Warn("model suggestion failed, using fallback", zap.Error(err))
		s.observe(OutcomeFallback)
		return s.fallback(doctors, history)
	}
	s.observe(OutcomeModel)
	return out
}

func (s *Suggester) ask(ctx context.Context, doctors []models.Doctor, history models.MedicalHistory) ([]models.Doctor, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(doctors, history)},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion")
	}
	return pickDoctors(doctors, resp.Choices[0].Message.Content)
}

func buildPrompt(doctors []models.Doctor, h models.MedicalHistory) string {
	var b strings.Builder
	b.WriteString("Doctors:\n")
	for _, d := range doctors {
		fmt.Fprintf(&b, "%d: %s, %s, treatments: %s\n", d.ID, d.Name, d.Specialization, strings.Join(d.Treatments, ", "))
	}
	b.WriteString("\nPatient history:\n")
	fmt.Fprintf(&b, "Conditions: %s\n", strings.Join(h.Conditions, ", "))
	fmt.Fprintf(&b, "Allergies: %s\n", strings.Join(h.Allergies, ", "))
	fmt.Fprintf(&b, "Medications: %s\n", strings.Join(h.Medications, ", "))
	fmt.Fprintf(&b, "Notes: %s\n", h.Notes)
	return b.String()
}

// pickDoctors resolves the model's id list against the catalogue, in the
// model's order. Unknown ids are ignored; an answer with no usable id is an
// error so the caller falls back.
func pickDoctors(doctors []models.Doctor, answer string) ([]models.Doctor, error) {
	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, "none") {
		return []models.Doctor{}, nil
	}
	byID := make(map[int]models.Doctor, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}
	seen := make(map[int]bool)
	var out []models.Doctor
	for _, part := range strings.FieldsFunc(answer, func(r rune) bool { return r == ',' || r == ' ' || r == '\n' }) {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		d, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unusable model answer %q", answer)
	}
	return out, nil
}
