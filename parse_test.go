package draftkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/draftkit"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		raw             string
		fallbackSubject string
		want            draftkit.Email
	}{
		{
			name:            "structured response",
			raw:             "Subject: Foo\nMessage:\nBar baz\nRegards,\nX",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Foo",
				// The signature stays in the message: only the first marker splits.
				Message: "Bar baz\nRegards,\nX",
			},
		},
		{
			name:            "unstructured response keeps fallback subject",
			raw:             "Just a message with no structure",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Original",
				Message: "Just a message with no structure",
			},
		},
		{
			name:            "uppercase markers",
			raw:             "SUBJECT: Hi\nMESSAGE:\nhello",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Hi",
				Message: "hello",
			},
		},
		{
			name:            "mixed-case markers",
			raw:             "sUbJeCt: Greetings\nMeSsAgE:\nbody text",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Greetings",
				Message: "body text",
			},
		},
		{
			name:            "surrounding whitespace trimmed",
			raw:             "\n\n  Subject: Trim Me\nMessage:\nContent here.  \n\n",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Trim Me",
				Message: "Content here.",
			},
		},
		{
			name:            "structured start without message marker",
			raw:             "Subject: Lonely subject line",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Original",
				Message: "Subject: Lonely subject line",
			},
		},
		{
			name:            "second marker stays in the body",
			raw:             "Subject: First\nMessage:\nIntro\nMessage:\nNot a new split",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "First",
				Message: "Intro\nMessage:\nNot a new split",
			},
		},
		{
			name:            "empty input",
			raw:             "",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Original",
				Message: "",
			},
		},
		{
			name:            "whitespace only input",
			raw:             "   \n\t  ",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Original",
				Message: "",
			},
		},
		{
			name:            "multiline message body preserved",
			raw:             "Subject: Update\nMessage:\nLine one.\n\nLine two.\n\nRegards,\nAlex",
			fallbackSubject: "Original",
			want: draftkit.Email{
				Subject: "Update",
				Message: "Line one.\n\nLine two.\n\nRegards,\nAlex",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := draftkit.Parse(tt.raw, tt.fallbackSubject)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Subject: Foo\nMessage:\nBar",
		"no structure at all",
		"SUBJECT: Hi\nMESSAGE:\nhello",
		"",
	}
	for _, raw := range inputs {
		first := draftkit.Parse(raw, "Fallback")
		second := draftkit.Parse(raw, "Fallback")
		assert.Equal(t, first, second, "Parse must be stateless for %q", raw)
	}
}

func TestParse_FieldsAlwaysSet(t *testing.T) {
	t.Parallel()

	// Even garbage input produces a structured result with the fallback
	// subject in place.
	got := draftkit.Parse("\x00\xff garbage \n\n", "Fallback")
	assert.Equal(t, "Fallback", got.Subject)
	assert.NotNil(t, got.Message)
}
