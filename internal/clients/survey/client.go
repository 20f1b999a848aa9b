package survey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
	"github.com/habitloop/habitloop-backend/internal/utils"
)

const exitSurveyPath = "/api/account/exit-survey"

// Client is the narrow capability the retention flow needs from the
// external survey service. Both calls are best-effort from the flow's
// point of view; errors degrade the flow, never block it.
type Client interface {
	FetchQuestions(ctx context.Context) ([]string, error)
	Submit(ctx context.Context, submission Submission) error
}

type Submission struct {
	Concern string   `json:"concern"`
	Answers []string `json:"answers"`
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv reads SURVEY_BASE_URL and SURVEY_TIMEOUT_SECONDS. The
// upstream contract specifies no timeout; 10 seconds is this client's
// chosen bound.
func ConfigFromEnv(log *logger.Logger) Config {
	timeoutSec := utils.GetEnvAsInt("SURVEY_TIMEOUT_SECONDS", 10, log)
	return Config{
		BaseURL: strings.TrimSpace(os.Getenv("SURVEY_BASE_URL")),
		Timeout: time.Duration(timeoutSec) * time.Second,
	}
}

func NewFromEnv(log *logger.Logger) (Client, error) {
	return New(log, ConfigFromEnv(log))
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("missing SURVEY_BASE_URL")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:        log.With("client", "SurveyClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

type questionsResponse struct {
	Questions []string `json:"questions"`
}

func (c *client) FetchQuestions(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+exitSurveyPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch exit survey: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch exit survey: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("fetch exit survey: read body: %w", err)
	}

	// An absent or malformed body counts as zero questions, not an error.
	var parsed questionsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.log.Debug("Exit survey body malformed, treating as zero questions", "error", err)
		return []string{}, nil
	}
	if parsed.Questions == nil {
		return []string{}, nil
	}
	return parsed.Questions, nil
}

func (c *client) Submit(ctx context.Context, submission Submission) error {
	if submission.Answers == nil {
		submission.Answers = []string{}
	}
	payload, err := json.Marshal(submission)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+exitSurveyPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submit exit survey: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit exit survey: status %d", resp.StatusCode)
	}
	return nil
}
