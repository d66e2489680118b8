// Package mailer dispatches single plain-text emails over an authenticated
// SMTP session with a STARTTLS upgrade.
//
// The package is built around the Sender interface so the transport can be
// replaced in tests or local development without touching calling code:
//   - SMTPSender for real delivery (one session, one message per Send)
//   - DevSender for local development (writes messages to disk)
//
// # Usage
//
//	var cfg mailer.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	sender, err := mailer.NewSMTPSender(cfg)
//	if err != nil {
//	    // Transport credentials missing: reported before any network I/O
//	}
//
//	err = sender.Send(ctx, mailer.SendParams{
//	    To:         "user@example.com",
//	    Subject:    "Request for Leave",
//	    Body:       message,
//	    SenderName: "Jordan", // optional, falls back to cfg.SenderName
//	})
//
// # Error Handling
//
// Sentinel errors, matchable with errors.Is:
//   - ErrInvalidConfig: transport configuration missing or malformed
//   - ErrInvalidParams: message parameters failed validation
//   - ErrFailedToSend: the SMTP session failed (dial, STARTTLS, auth, protocol)
//
// A failed send retains no partial state; the session is torn down on every
// exit path and the message is never queued for retry.
//
// # Testability
//
// NewSMTPSender accepts options (WithDialer, WithTLSConfig, WithAuth,
// WithClock, WithMessageID, WithHelloName) that let tests run the full
// session against an in-memory server with deterministic headers.
package mailer
