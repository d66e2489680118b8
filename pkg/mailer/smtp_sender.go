package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dialer abstracts net.Dialer to simplify testing.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Option configures the behaviour of the SMTP sender.
type Option func(*SMTPSender)

// WithDialer swaps the network dialer used to establish SMTP connections.
func WithDialer(d Dialer) Option {
	return func(s *SMTPSender) {
		if d != nil {
			s.dialer = d
		}
	}
}

// WithTLSConfig overrides the TLS configuration used for the STARTTLS
// upgrade. Passing nil disables the upgrade entirely; intended for tests and
// local relays only.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *SMTPSender) {
		s.tlsConfig = cfg
	}
}

// WithAuth supplies a custom SMTP auth strategy. When omitted the sender uses
// PLAIN auth with the configured credentials.
func WithAuth(auth smtp.Auth) Option {
	return func(s *SMTPSender) {
		s.auth = auth
	}
}

// WithHelloName customises the EHLO identity presented to the server.
func WithHelloName(name string) Option {
	return func(s *SMTPSender) {
		if strings.TrimSpace(name) != "" {
			s.helloName = strings.TrimSpace(name)
		}
	}
}

// WithClock replaces the clock used for the Date header.
func WithClock(now func() time.Time) Option {
	return func(s *SMTPSender) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMessageID replaces the Message-Id generator.
func WithMessageID(newID func() string) Option {
	return func(s *SMTPSender) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// SMTPSender implements Sender over an authenticated SMTP session with a
// STARTTLS upgrade. Each Send opens exactly one session, delivers exactly one
// message, and tears the session down on every exit path. There is no
// batching, queuing, or retry.
type SMTPSender struct {
	config    Config
	auth      smtp.Auth
	tlsConfig *tls.Config
	dialer    Dialer
	now       func() time.Time
	newID     func() string
	helloName string
}

// NewSMTPSender creates an SMTP-backed sender. Host, Username, and Password
// are all required; their absence fails here, before any network I/O.
func NewSMTPSender(cfg Config, opts ...Option) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: invalid port %d", ErrInvalidConfig, cfg.Port)
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return nil, fmt.Errorf("%w: Username is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.Username) {
		return nil, fmt.Errorf("%w: Username must be the account email address", ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", ErrInvalidConfig)
	}

	s := &SMTPSender{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
		dialer:    &net.Dialer{Timeout: 30 * time.Second},
		now:       time.Now,
		newID:     uuid.NewString,
		helloName: "localhost",
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// MustNewSMTPSender creates an SMTP sender that panics on invalid config.
func MustNewSMTPSender(cfg Config, opts ...Option) *SMTPSender {
	s, err := NewSMTPSender(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Send delivers one plain-text message. Any session failure, from dialing
// through the final protocol exchange, wraps ErrFailedToSend and surfaces to
// the caller; nothing is queued for later.
func (s *SMTPSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	recipient, err := mail.ParseAddress(params.To)
	if err != nil {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}

	message := s.buildMessage(params)
	if err := s.deliver(ctx, recipient.Address, message); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	return nil
}

func (s *SMTPSender) deliver(ctx context.Context, recipient string, message []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	// Unblock the session if the context is cancelled mid-conversation.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()
	defer close(done)

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("new client: %w", err)
	}
	defer client.Close()

	if err := client.Hello(s.helloName); err != nil {
		return fmt.Errorf("hello: %w", err)
	}

	if s.tlsConfig != nil {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errors.New("server does not support STARTTLS")
		}
		if err := client.StartTLS(s.sessionTLSConfig()); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if s.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(s.auth); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err := client.Mail(s.config.Username); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("rcpt to %s: %w", recipient, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		_ = writer.Close()
		return fmt.Errorf("data write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("data close: %w", err)
	}

	if err := client.Quit(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("quit: %w", err)
	}

	// The message was accepted; a context cancelled at this point must not
	// report a delivery failure.
	return nil
}

// buildMessage renders the RFC 5322 message with a fixed header order so the
// output is reproducible.
func (s *SMTPSender) buildMessage(params SendParams) []byte {
	senderName := strings.TrimSpace(params.SenderName)
	if senderName == "" {
		senderName = s.config.SenderName
	}
	from := mail.Address{Name: senderName, Address: s.config.Username}

	var sb strings.Builder
	writeHeader := func(key, value string) {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(sanitizeHeaderValue(value))
		sb.WriteString("\r\n")
	}

	writeHeader("From", from.String())
	writeHeader("To", params.To)
	writeHeader("Subject", params.Subject)
	writeHeader("Date", s.now().UTC().Format(time.RFC1123Z))
	writeHeader("Message-Id", fmt.Sprintf("<%s@%s>", s.newID(), s.config.Host))
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", "text/plain; charset=UTF-8")
	sb.WriteString("\r\n")
	sb.WriteString(normalizeBody(params.Body))

	return []byte(sb.String())
}

func (s *SMTPSender) sessionTLSConfig() *tls.Config {
	cfg := s.tlsConfig.Clone()
	if cfg.ServerName == "" {
		cfg.ServerName = s.config.Host
	}
	return cfg
}

// normalizeBody converts any line ending style to CRLF as SMTP requires.
func normalizeBody(body string) string {
	if body == "" {
		return ""
	}
	normalized := strings.ReplaceAll(body, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.ReplaceAll(normalized, "\n", "\r\n")
}

// sanitizeHeaderValue strips CR/LF to prevent header injection.
func sanitizeHeaderValue(value string) string {
	clean := strings.ReplaceAll(value, "\r", " ")
	clean = strings.ReplaceAll(clean, "\n", " ")
	return strings.TrimSpace(clean)
}
