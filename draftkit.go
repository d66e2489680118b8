package draftkit

import (
	"context"

	"github.com/dmitrymomot/draftkit/pkg/gemini"
	"github.com/dmitrymomot/draftkit/pkg/mailer"
	"github.com/dmitrymomot/draftkit/pkg/prompt"
)

// Default generation parameters for short professional emails.
const (
	DefaultMaxTokens   = 300
	DefaultTemperature = 0.2
)

// Generator produces raw text from a prompt. *gemini.Client satisfies it;
// tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, params gemini.GenerateParams) (string, error)
}

// Service wires the prompt builder, the generation client, and the mail
// sender into the two caller-facing operations: GenerateEmail and SendEmail.
// It holds no mutable state between calls; a generated Email lives only with
// the caller until (optionally) passed back to SendEmail.
type Service struct {
	builder     *prompt.Builder
	generator   Generator
	sender      mailer.Sender
	model       string
	maxTokens   int
	temperature float64
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithModel overrides the generation model for all requests.
func WithModel(model string) ServiceOption {
	return func(s *Service) { s.model = model }
}

// WithMaxTokens overrides the output token limit.
func WithMaxTokens(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(temp float64) ServiceOption {
	return func(s *Service) { s.temperature = temp }
}

// WithSender attaches a mail sender. Without one, GenerateEmail still works
// and SendEmail fails with ErrSenderNotSet.
func WithSender(sender mailer.Sender) ServiceOption {
	return func(s *Service) { s.sender = sender }
}

// NewService creates the draftkit service.
func NewService(builder *prompt.Builder, generator Generator, opts ...ServiceOption) (*Service, error) {
	if builder == nil {
		return nil, ErrBuilderNotSet
	}
	if generator == nil {
		return nil, ErrGeneratorNotSet
	}

	s := &Service{
		builder:     builder,
		generator:   generator,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateEmail builds the prompt for the given subject, template key, and
// context variables, runs one generation call, and parses the raw output.
// An unknown template key fails with template.ErrUnknownTemplate before any
// remote call; generation failures surface as gemini.ErrGenerationFailed.
// The subject the caller supplied is the parse fallback, so the returned
// Email always carries a non-empty subject when one was given.
func (s *Service) GenerateEmail(ctx context.Context, subject, templateKey string, contextVars map[string]string) (Email, error) {
	promptText, err := s.builder.Build(subject, templateKey, contextVars)
	if err != nil {
		return Email{}, err
	}

	raw, err := s.generator.Generate(ctx, gemini.GenerateParams{
		Prompt:      promptText,
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return Email{}, err
	}

	return Parse(raw, subject), nil
}

// SendEmail dispatches one plain-text email through the configured sender.
// The caller supplies the generated subject and body explicitly; the service
// does not cache or sequence them.
func (s *Service) SendEmail(ctx context.Context, recipient, subject, body, senderDisplayName string) error {
	if s.sender == nil {
		return ErrSenderNotSet
	}
	return s.sender.Send(ctx, mailer.SendParams{
		To:         recipient,
		Subject:    subject,
		Body:       body,
		SenderName: senderDisplayName,
	})
}
