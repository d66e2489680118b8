package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrymomot/draftkit"
	"github.com/dmitrymomot/draftkit/pkg/config"
	"github.com/dmitrymomot/draftkit/pkg/gemini"
	"github.com/dmitrymomot/draftkit/pkg/mailer"
	"github.com/dmitrymomot/draftkit/pkg/prompt"
	"github.com/dmitrymomot/draftkit/pkg/template"
)

func main() {
	var (
		to            = flag.String("to", "", "recipient email address (required with -send)")
		subject       = flag.String("subject", "", "email subject (required)")
		templateKey   = flag.String("template", template.KeyLeaveRequest, "template key")
		send          = flag.Bool("send", false, "send the generated email via SMTP")
		outbox        = flag.String("outbox", "", "write the email to this directory instead of sending (implies -send)")
		templatesFile = flag.String("templates", "", "optional YAML file with extra template definitions")
	)
	contextVars := map[string]string{}
	flag.Func("context", "context variable as key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		contextVars[key] = value
		return nil
	})
	flag.Parse()

	if *subject == "" {
		log.Fatal("missing -subject")
	}

	// The generation credential is required before anything else can run.
	var genCfg gemini.Config
	if err := config.Load(&genCfg); err != nil {
		log.Fatalf("Failed to load generation config: %v", err)
	}
	var mailCfg mailer.Config
	if err := config.Load(&mailCfg); err != nil {
		log.Fatalf("Failed to load mail config: %v", err)
	}

	var registryOpts []template.Option
	if *templatesFile != "" {
		registryOpts = append(registryOpts, template.WithDefinitionsFile(*templatesFile))
	}
	registry, err := template.New(registryOpts...)
	if err != nil {
		log.Fatalf("Failed to build template registry: %v", err)
	}

	builder, err := prompt.New(registry, prompt.WithSenderName(mailCfg.SenderName))
	if err != nil {
		log.Fatalf("Failed to build prompt builder: %v", err)
	}

	svc, err := draftkit.NewService(builder, gemini.MustNew(genCfg))
	if err != nil {
		log.Fatalf("Failed to build service: %v", err)
	}

	ctx := context.Background()
	email, err := svc.GenerateEmail(ctx, *subject, *templateKey, contextVars)
	if err != nil {
		log.Fatalf("Failed to generate email: %v", err)
	}

	fmt.Printf("Subject: %s\nMessage:\n%s\n", email.Subject, email.Message)

	if !*send && *outbox == "" {
		return
	}
	if *to == "" {
		log.Fatal("missing -to")
	}

	var sender mailer.Sender
	if *outbox != "" {
		sender = mailer.NewDevSender(*outbox)
	} else {
		// Transport credentials are only checked here, at the first actual
		// send attempt.
		sender, err = mailer.NewSMTPSender(mailCfg)
		if err != nil {
			log.Fatalf("SMTP configuration: %v", err)
		}
	}

	if err := sender.Send(ctx, mailer.SendParams{
		To:         *to,
		Subject:    email.Subject,
		Body:       email.Message,
		SenderName: mailCfg.SenderName,
	}); err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}
	fmt.Println("Email sent to", *to)
}
