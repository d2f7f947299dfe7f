package janus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
)

const (
	janusPluginAudioBridge = "janus.plugin.audiobridge"
)

type Config struct {
	URL               string        `mapstructure:"url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	KeepaliveInterval time.Duration `mapstructure:"keepalive_interval"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("url"), "http://localhost:8088")
	v.SetDefault(p("timeout"), "10s")
	v.SetDefault(p("keepalive_interval"), "15s")
}

type apiImpl struct {
	baseURL           string
	client            *resty.Client
	keepaliveInterval time.Duration
	logger            *log.Logger
}

// New creates a Janus API helper backed by go-resty.
func New(cfg *Config, logger *log.Logger) API {
	if logger == nil {
		panic("logger is required")
	}
	keepalive := cfg.KeepaliveInterval
	if keepalive <= 0 {
		keepalive = 15 * time.Second
	}
	return &apiImpl{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.Timeout),
		keepaliveInterval: keepalive,
		logger:            logger,
	}
}

func (api *apiImpl) CreateListenerInstance(ctx context.Context, clientID string) (Listener, error) {
	sessionID, err := api.createSession(ctx)
	if err != nil {
		return nil, err
	}
	handleID, err := api.attach(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return newListenerInstance(api, clientID, sessionID, handleID), nil
}

func (api *apiImpl) createSession(ctx context.Context) (int64, error) {
	body := map[string]any{
		"janus": "create",
	}
	resp, err := api.post(ctx, "/janus", body)
	if err != nil {
		return 0, err
	}
	if resp.Data == nil {
		return 0, errors.New(ErrInvalidPayload, "janus create session missing data")
	}
	return resp.Data.ID, nil
}

func (api *apiImpl) attach(ctx context.Context, sessionID int64) (int64, error) {
	body := map[string]any{
		"janus":  "attach",
		"plugin": janusPluginAudioBridge,
	}
	path := fmt.Sprintf("/janus/%d", sessionID)
	resp, err := api.post(ctx, path, body)
	if err != nil {
		return 0, err
	}
	if resp.Data == nil {
		return 0, errors.New(ErrInvalidPayload, "janus attach missing data")
	}
	return resp.Data.ID, nil
}

func (api *apiImpl) post(ctx context.Context, path string, payload map[string]any) (*JanusResponse, error) {
	if payload == nil {
		payload = make(map[string]any)
	}
	if _, ok := payload["transaction"]; !ok {
		payload["transaction"] = uuid.NewString()
	}
	api.logger.Debug("janus req", log.String("path", path), log.Any("body", payload))

	var respPayload JanusResponse
	resp, err := api.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&respPayload).
		Post(api.baseURL + path)
	if err != nil {
		return nil, errors.Wrap(ErrFailedRequest, err, "janus request")
	}

	if resp.IsError() {
		return nil, errors.Newf(ErrNoneSuccessResponse, "janus http error: (code: %d)", resp.StatusCode())
	}
	api.logger.Debug("janus resp", log.Int("status", resp.StatusCode()), log.Any("payload", respPayload))

	if err := checkSuccess(&respPayload); err != nil {
		return nil, err
	}
	return &respPayload, nil
}
