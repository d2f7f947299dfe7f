package main

import (
	"context"
	"net/http"

	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/hlsproxy/transport"
	"github.com/imtaco/live-viewer/hlsproxy/upstream"
	"github.com/imtaco/live-viewer/internal/config"
	"github.com/imtaco/live-viewer/internal/httputil"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/otel"
	"github.com/imtaco/live-viewer/internal/workflow"
)

type Config struct {
	App      config.App      `mapstructure:"app"`
	Http     httputil.Config `mapstructure:"http"`
	Otel     otel.Config     `mapstructure:"otel"`
	Upstream upstream.Config `mapstructure:"upstream"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		config.Setup(v, "app")
		httputil.Setup(v, "http")
		otel.Setup(v, "otel")
		upstream.Setup(v, "upstream")

		// override default addrs to ease testing
		v.SetDefault("http.addr", "0.0.0.0:3102")
	})
}

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

	ctx := context.Background()

	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting HLS proxy",
		log.String("origin", config.Upstream.Origin),
		log.Int("segmentCacheSize", config.Upstream.CacheSize))

	fetcher, err := upstream.New(&config.Upstream, logger.Module("Upstream"))
	if err != nil {
		logger.Fatal("Failed to create upstream fetcher", log.Error(err))
	}

	router := transport.NewRouter(fetcher, config.Upstream.Origin, logger.Module("Router"))
	server := httputil.NewServer(&config.Http, router.Handler())

	go func() {
		logger.Info("Starting HLS proxy server", log.String("addr", config.Http.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HLS proxy server", log.Error(err))
		}
	}()

	cleanup := func(ctx context.Context) {
		server.Shutdown(ctx)

		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
