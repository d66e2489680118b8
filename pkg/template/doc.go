// Package template provides the static registry of email templates and the
// fixed few-shot examples used to bias generation output.
//
// A Registry is assembled once at startup from the built-in definitions,
// optionally extended with caller-supplied definitions or a YAML file, and is
// read-only afterwards. Prompt construction resolves a template key through
// Lookup, which fails with ErrUnknownTemplate before any remote call is made.
//
// # Usage
//
//	registry, err := template.New(
//	    template.WithDefinitionsFile("./templates.yaml"), // optional
//	)
//	if err != nil {
//	    // Handle invalid definitions
//	}
//
//	def, err := registry.Lookup(template.KeyLeaveRequest)
//	if errors.Is(err, template.ErrUnknownTemplate) {
//	    // Correct the key; retrying without a fix cannot succeed
//	}
//
// Placeholders on a Definition document the context keys a caller is expected
// to supply. They are informational only and never enforced.
package template
