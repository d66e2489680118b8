package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development.
// It saves messages as text and JSON files to a directory
// instead of opening an SMTP session.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that writes messages to disk.
// The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) Sender {
	return &DevSender{dir: dir}
}

// messageMetadata is the JSON sidecar written next to each message body.
type messageMetadata struct {
	Timestamp  string `json:"timestamp"`
	To         string `json:"to"`
	Subject    string `json:"subject"`
	SenderName string `json:"sender_name,omitempty"`
}

// Send writes the body as a .txt file and metadata as a .json file.
func (d *DevSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(params.Subject))

	txtPath := filepath.Join(d.dir, baseFilename+".txt")
	if err := os.WriteFile(txtPath, []byte(params.Body), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write message file: %v", ErrFailedToSend, err)
	}

	metadata := messageMetadata{
		Timestamp:  now.Format(time.RFC3339),
		To:         params.To,
		Subject:    params.Subject,
		SenderName: params.SenderName,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write metadata file: %v", ErrFailedToSend, err)
	}

	return nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject into a safe, lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
