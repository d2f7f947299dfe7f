// Package tokenclient exchanges room codes for room auth tokens over HTTP.
package tokenclient

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/retry"
	"github.com/imtaco/live-viewer/viewer"
)

type Config struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Retry    retry.Config  `mapstructure:"retry"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("endpoint"), "https://auth.100ms.live/v2/token")
	v.SetDefault(p("timeout"), "5s")
	retry.Setup(v, p("retry"))
}

type tokenRequest struct {
	Code   string `json:"code"`
	UserID string `json:"user_id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client implements viewer.TokenIssuer.
type Client struct {
	endpoint string
	client   *resty.Client
	retry    retry.Retry
	logger   *log.Logger
}

var _ viewer.TokenIssuer = (*Client)(nil)

func New(cfg *Config, logger *log.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		client: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.Timeout),
		retry:  retry.NewFromConfig(logger, &cfg.Retry),
		logger: logger,
	}
}

// AuthTokenByRoomCode requests a token for code with a fresh anonymous user
// id. Server errors and network failures are retried; 4xx answers are not.
func (c *Client) AuthTokenByRoomCode(ctx context.Context, roomCode string) (string, error) {
	req := tokenRequest{
		Code:   roomCode,
		UserID: uuid.NewString(),
	}

	var token string
	err := c.retry.Do(ctx, func() error {
		t, err := c.request(ctx, req)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		return "", errors.Wrap(viewer.ErrToken, err, "request auth token")
	}

	c.logger.Debug("Got auth token", log.String("roomCode", roomCode))
	return token, nil
}

func (c *Client) request(ctx context.Context, req tokenRequest) (string, error) {
	var (
		out    tokenResponse
		errOut errorResponse
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&errOut).
		Post(c.endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return "", retry.Permanent(err)
		}
		return "", err
	}

	if resp.IsError() {
		msg := errOut.Message
		if msg == "" {
			msg = errOut.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		err := errors.PureNew(msg)
		if resp.StatusCode() < http.StatusInternalServerError {
			return "", retry.Permanent(err)
		}
		return "", err
	}

	if out.Token == "" {
		return "", retry.Permanent(errors.PureNew("empty token in response"))
	}
	return out.Token, nil
}
