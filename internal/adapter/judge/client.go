package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
	"gitlab.com/golf-2025.net/internal/static/errs"
)

// maxResponseBytes bounds the diagnostics read back from the judge
const maxResponseBytes = 4 << 20

var _ secondary.Judge = (*Client)(nil)

// runResponse is the judge's answer; a body without pass carries no verdict
type runResponse struct {
	Pass  *bool           `json:"pass"`
	Tests json.RawMessage `json:"tests"`
}

// Client runs code on the remote judge service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a judge client; timeout bounds a whole evaluation
func NewClient(baseURL string, timeout time.Duration, logger primary.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Evaluate posts the code to the judge. Any failure to obtain a verdict is errs.ErrJudgeUnavailable.
func (c *Client) Evaluate(ctx context.Context, req domain.JudgeRequest) (*domain.Verdict, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %w", errs.ErrJudgeUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", errs.ErrJudgeUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Failed to call judge", "language", req.Language, "error", err)
		return nil, fmt.Errorf("%w: %w", errs.ErrJudgeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Judge returned an error", "status", resp.StatusCode, "body", string(msg))
		return nil, fmt.Errorf("%w: status %d", errs.ErrJudgeUnavailable, resp.StatusCode)
	}

	var run runResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&run); err != nil {
		c.logger.Error("Failed to decode judge response", "error", err)
		return nil, fmt.Errorf("%w: failed to decode response: %w", errs.ErrJudgeUnavailable, err)
	}
	if run.Pass == nil {
		c.logger.Error("Judge response has no verdict", "language", req.Language)
		return nil, fmt.Errorf("%w: response has no verdict", errs.ErrJudgeUnavailable)
	}

	return &domain.Verdict{Pass: *run.Pass, Tests: run.Tests}, nil
}
