// Package draftkit generates short professional emails from a fixed set of
// templates via the Gemini text-generation API and optionally dispatches the
// result over authenticated SMTP.
//
// The pipeline is deliberately small and synchronous: a deterministic prompt
// is built from the template registry and few-shot examples (pkg/prompt,
// pkg/template), one blocking generation call produces raw text (pkg/gemini),
// a tolerant rule-based parser turns that text into an Email record (Parse),
// and the caller may hand the record to an SMTP sender (pkg/mailer). There is
// no internal caching, queuing, or retry; calls are independent and safe to
// issue repeatedly.
//
// # Usage
//
//	registry := template.MustNew()
//	builder, _ := prompt.New(registry, prompt.WithSenderName("Jordan"))
//
//	var genCfg gemini.Config
//	config.MustLoad(&genCfg) // GEMINI_API_KEY is required
//
//	svc, err := draftkit.NewService(builder, gemini.MustNew(genCfg))
//	if err != nil {
//	    return err
//	}
//
//	email, err := svc.GenerateEmail(ctx, "Request for Leave",
//	    template.KeyLeaveRequest,
//	    map[string]string{"reason": "personal", "date": "tomorrow"},
//	)
//
// Sending is opt-in and configured separately, so transport credentials are
// only required when a send is actually attempted:
//
//	var smtpCfg mailer.Config
//	config.MustLoad(&smtpCfg)
//	sender, err := mailer.NewSMTPSender(smtpCfg) // fails before any network I/O
//	...
//	err = svc.SendEmail(ctx, "boss@example.com", email.Subject, email.Message, "Jordan")
//
// # Error Handling
//
// Failures propagate synchronously and unmodified:
//   - template.ErrUnknownTemplate: bad template key, raised before any remote call
//   - gemini.ErrGenerationFailed: generation call failed or yielded no text
//   - mailer.ErrInvalidConfig: transport credentials missing, before any I/O
//   - mailer.ErrFailedToSend: the SMTP session failed; nothing is queued
//
// Parse is the one failure-free component: it always returns a structured
// Email, falling back to the caller's subject and the whole raw text.
package draftkit
