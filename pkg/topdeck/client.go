package topdeck

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/arthur-debert/snaparch/pkg/errors"
	"github.com/arthur-debert/snaparch/pkg/logging"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public TopDeck API root
const DefaultBaseURL = "https://topdeck.gg/api"

// Options configures a Client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Retries is the number of extra attempts on network errors and 5xx responses
	Retries int
	// RetryWait is the initial backoff between attempts; zero uses 200ms
	RetryWait time.Duration
}

// Client fetches tournament results from the TopDeck API
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// NewClient creates a TopDeck client. An API key is required.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"TopDeck API key is required (set topdeck.api_key or SNAPARCH_TOPDECK_API_KEY)")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = 200 * time.Millisecond
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", opts.APIKey).
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(10 * opts.RetryWait)
	client.AddRetryCondition(retryCondition)

	return &Client{
		http:   client,
		logger: logging.GetLogger("topdeck"),
	}, nil
}

// retryCondition retries network failures, throttling and server errors
func retryCondition(r *resty.Response, err error) bool {
	if r == nil || r.RawResponse == nil {
		return err != nil
	}
	code := r.StatusCode()
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}

// GetTournament fetches the standings of tournament tid
func (c *Client) GetTournament(ctx context.Context, tid string) (*Tournament, error) {
	if tid == "" {
		return nil, errors.New(errors.ErrInvalidInput, "tournament id is required")
	}
	c.logger.Debug().Str("tid", tid).Msg("Fetching tournament")

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("tid", tid).
		Get("/v2/tournaments/{tid}")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTournamentFetch, "request for tournament %s failed", tid).
			WithDetail("tid", tid)
	}
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, errors.Newf(errors.ErrTournamentFetch, "tournament %s: request failed with status %d", tid, resp.StatusCode()).
			WithDetails(map[string]interface{}{"tid": tid, "status": resp.StatusCode()})
	}

	var tournament Tournament
	if err := json.Unmarshal(resp.Body(), &tournament); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTournamentFetch, "tournament %s: invalid response body", tid).
			WithDetail("tid", tid)
	}
	if tournament.TID == "" {
		tournament.TID = tid
	}

	c.logger.Info().
		Str("tid", tid).
		Int("standings", len(tournament.Standings)).
		Int("attempts", resp.Request.Attempt).
		Msg("Fetched tournament")
	return &tournament, nil
}
