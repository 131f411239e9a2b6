package gemini

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/extraction"
)

// Client calls a Gemini vision model with the PDF attached inline.
type Client struct {
	client *genai.Client
	cfg    Config
	logger *slog.Logger
}

var _ extraction.Extractor = (*Client)(nil)

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.withDefaults()
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		logger.Error("extract.client.init_failed", "model", cfg.Model, "error", err)
		return nil, common.NewAppError("EXTRACT_TRANSPORT", "creating gemini client", common.ErrTransport)
	}
	return &Client{client: c, cfg: cfg, logger: logger}, nil
}

// Extract sends the PDF plus the fixed schema prompt and decodes the
// response. Transport failures are retried with linear backoff up to
// MaxAttempts; unparseable output degrades to the fallback structure
// without retrying.
func (c *Client) Extract(ctx context.Context, pdfBytes []byte) (extraction.RawExtraction, error) {
	start := time.Now()
	c.logger.Info("extract.start", "model", c.cfg.Model, "pdf_bytes", len(pdfBytes))

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(extraction.BuildPrompt()),
			genai.NewPartFromBytes(pdfBytes, "application/pdf"),
		}, genai.RoleUser),
	}

	text, err := c.generate(ctx, contents)
	if err != nil {
		return nil, err
	}

	raw, perr := extraction.ParseResponse(text)
	if perr != nil {
		c.logger.Warn("extract.parse_fallback", "model", c.cfg.Model, "error", perr, "response_len", len(text))
		raw = extraction.FallbackExtraction(text)
	}

	c.logger.Info("extract.ok",
		"model", c.cfg.Model,
		"fallback", perr != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return raw, nil
}

// TestConnection performs one minimal round-trip; failure here is fatal
// for the processing attempt and is not retried inline.
func (c *Client) TestConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(testConnectionPrompt), nil)
	if err != nil {
		c.logger.Error("extract.ping_failed", "model", c.cfg.Model, "error", err)
		return common.NewAppError("EXTRACT_TRANSPORT", "model endpoint unreachable", common.ErrTransport)
	}
	if strings.TrimSpace(resp.Text()) == "" {
		return common.NewAppError("EXTRACT_TRANSPORT", "model endpoint returned empty ping response", common.ErrTransport)
	}
	return nil
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", common.NewAppError("EXTRACT_TRANSPORT", "context cancelled between attempts", common.ErrTransport)
			case <-time.After(time.Duration(attempt-1) * c.cfg.RetryBackoff):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.cfg.AttemptTimeout)
		resp, err := c.client.Models.GenerateContent(callCtx, c.cfg.Model, contents, nil)
		cancel()

		if err != nil {
			lastErr = err
			c.logger.Warn("extract.attempt_failed", "model", c.cfg.Model, "attempt", attempt, "error", err)
			continue
		}
		return resp.Text(), nil
	}
	c.logger.Error("extract.transport_failed", "model", c.cfg.Model, "attempts", c.cfg.MaxAttempts, "error", lastErr)
	return "", common.NewAppError("EXTRACT_TRANSPORT", "model call failed after retries", common.ErrTransport)
}

const testConnectionPrompt = `Responde únicamente con la palabra "OK".`
