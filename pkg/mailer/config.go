package mailer

// Config holds SMTP transport configuration.
// Host, Username, and Password are validated at sender construction time so
// missing credentials fail before any network session is opened. SenderName
// is the default From display name and may be overridden per message.
type Config struct {
	Host       string `env:"SMTP_HOST"`
	Port       int    `env:"SMTP_PORT" envDefault:"587"`
	Username   string `env:"SMTP_USER"`
	Password   string `env:"SMTP_PASS"`
	SenderName string `env:"SENDER_NAME" envDefault:"Alex"`
}
