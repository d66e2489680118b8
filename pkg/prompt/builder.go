package prompt

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/draftkit/pkg/template"
)

const (
	preamble        = "You are a helpful assistant that writes professional emails. Follow the exact format in the examples.\n\n"
	newEmailHeader  = "Now write a new email.\nSubject: "
	closingTemplate = "\n\nRespond only with the email in the exact format: Subject: <...>\nMessage:\n<...>\nRegards,\n"
)

// Builder composes deterministic generation prompts from a template
// registry, a fixed few-shot example set, and a sender first name.
type Builder struct {
	registry   *template.Registry
	examples   []template.Example
	senderName string
}

// Option configures a Builder during construction.
type Option func(*Builder)

// WithExamples replaces the default few-shot example set.
func WithExamples(examples ...template.Example) Option {
	return func(b *Builder) {
		if len(examples) > 0 {
			b.examples = examples
		}
	}
}

// WithSenderName sets the first name used to sign the closing instruction
// and the default few-shot examples. Falls back to template.DefaultSenderName.
func WithSenderName(name string) Option {
	return func(b *Builder) {
		if strings.TrimSpace(name) != "" {
			b.senderName = firstName(name)
		}
	}
}

// New creates a prompt builder backed by the given registry.
func New(registry *template.Registry, opts ...Option) (*Builder, error) {
	if registry == nil {
		return nil, ErrRegistryNotSet
	}

	b := &Builder{
		registry:   registry,
		senderName: template.DefaultSenderName,
	}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.examples) == 0 {
		b.examples = template.DefaultExamples(b.senderName)
	}
	return b, nil
}

// Build composes the prompt for the given subject, template key, and context
// variables. It is a pure function: identical inputs always produce a
// byte-identical prompt. Context pairs are emitted in sorted key order so the
// output does not depend on map iteration order.
//
// The template key is resolved before anything is assembled, so an unknown
// key fails with template.ErrUnknownTemplate without any remote call.
func (b *Builder) Build(subject, templateKey string, contextVars map[string]string) (string, error) {
	def, err := b.registry.Lookup(templateKey)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(preamble)
	for _, ex := range b.examples {
		sb.WriteString("Subject: ")
		sb.WriteString(ex.Subject)
		sb.WriteString("\nMessage:\n")
		sb.WriteString(ex.Message)
		sb.WriteString("\n\n")
	}

	sb.WriteString(newEmailHeader)
	sb.WriteString(subject)
	sb.WriteString("\nMessage:\n")
	sb.WriteString(def.Instruction)

	if len(contextVars) > 0 {
		sb.WriteString("\nContext:")
		keys := make([]string, 0, len(contextVars))
		for key := range contextVars {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			sb.WriteString(" ")
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(contextVars[key])
			sb.WriteString(";")
		}
	}

	sb.WriteString(closingTemplate)
	sb.WriteString(b.senderName)

	return sb.String(), nil
}

// SenderName returns the first name used to sign prompts.
func (b *Builder) SenderName() string {
	return b.senderName
}

// firstName reduces a display name to its first whitespace-separated token.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return template.DefaultSenderName
	}
	return fields[0]
}
