package main

import (
	"context"
	"io"
	"net/http"

	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/internal/config"
	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/httputil"
	"github.com/imtaco/live-viewer/internal/janus"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/otel"
	"github.com/imtaco/live-viewer/internal/workflow"
	"github.com/imtaco/live-viewer/viewer"
	"github.com/imtaco/live-viewer/viewer/janusroom"
	"github.com/imtaco/live-viewer/viewer/phase"
	"github.com/imtaco/live-viewer/viewer/playback"
	"github.com/imtaco/live-viewer/viewer/session"
	"github.com/imtaco/live-viewer/viewer/tokenclient"
	"github.com/imtaco/live-viewer/viewer/transport"
	"github.com/imtaco/live-viewer/viewer/view"
)

type Config struct {
	App            config.App         `mapstructure:"app"`
	Http           httputil.Config    `mapstructure:"http"`
	Otel           otel.Config        `mapstructure:"otel"`
	Janus          janus.Config       `mapstructure:"janus"`
	JanusRoom      janusroom.Config   `mapstructure:"janus_room"`
	TokenClient    tokenclient.Config `mapstructure:"token_client"`
	Session        session.Config     `mapstructure:"session"`
	AllowedOrigins []string           `mapstructure:"allowed_origins"`
	InitialInput   string             `mapstructure:"initial_input"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("allowed_origins", []string{"*"})
		v.SetDefault("initial_input", "")

		config.Setup(v, "app")
		httputil.Setup(v, "http")
		otel.Setup(v, "otel")
		janus.Setup(v, "janus")
		janusroom.Setup(v, "janus_room")
		tokenclient.Setup(v, "token_client")
		session.Setup(v, "session")

		// override default addrs to ease testing
		v.SetDefault("http.addr", "0.0.0.0:8090")
	})
}

// noPlayer stands in until a media backend is configured; every attach
// fails and the failure surfaces as the playback error.
var noPlayer = viewer.PlayerFactoryFunc(func(url string, _ io.Writer) (viewer.Player, error) {
	return nil, errors.Newf(viewer.ErrPlayback, "no media player configured for %s", url)
})

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer logger.Sync()

	// global background context
	ctx := context.Background()

	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting viewer...",
		log.String("janus", config.Janus.URL),
		log.String("tokenEndpoint", config.TokenClient.Endpoint),
		log.String("fallback", string(config.Session.Fallback)))

	janusAPI := janus.New(&config.Janus, logger.Module("Janus"))
	room := janusroom.New(janusAPI, &config.JanusRoom, logger.Module("Room"))
	tokens := tokenclient.New(&config.TokenClient, logger.Module("Token"))

	sess := session.NewController(tokens, room, &config.Session, logger.Module("Session"))
	tracker := phase.NewTracker(room, logger.Module("Phase"))
	player := playback.NewController(noPlayer, io.Discard, logger.Module("Playback"))

	v := view.New(sess, tracker, player, room, logger.Module("View"))
	v.Start()

	if config.InitialInput != "" {
		if err := v.Load(ctx, config.InitialInput); err != nil {
			logger.Error("Initial load failed", log.String("input", config.InitialInput), log.Error(err))
		}
	}

	router := transport.NewRouter(v, config.AllowedOrigins, logger.Module("Router"))
	server := httputil.NewServer(&config.Http, router.Handler())

	go func() {
		logger.Info("Starting viewer API server", log.String("addr", config.Http.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start viewer API server", log.Error(err))
		}
	}()

	cleanup := func(ctx context.Context) {
		server.Shutdown(ctx)
		v.Close(ctx)

		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
