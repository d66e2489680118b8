// Package gemini wraps the Google Generative Language (Gemini) REST API
// behind a small synchronous client for text generation.
//
// The client sends one generateContent request per call and never retries;
// temperature and token limits are passed through unmodified. Extracting the
// answer from a partially populated response follows an explicit, ordered
// fallback chain (see extract.go): the first candidate's text parts, the
// first candidate serialized back to JSON, and finally the raw response body.
// If every step yields nothing, Generate reports ErrGenerationFailed.
//
// # Usage
//
//	var cfg gemini.Config
//	if err := config.Load(&cfg); err != nil {
//	    // GEMINI_API_KEY missing: fatal at startup
//	}
//
//	client, err := gemini.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	text, err := client.Generate(ctx, gemini.GenerateParams{
//	    Prompt:      prompt,
//	    MaxTokens:   300,
//	    Temperature: 0.2,
//	})
//
// The zero Config is unusable: an API key is always required. Use
// Config.BaseURL and Config.HTTPClient to point the client at a test server.
package gemini
