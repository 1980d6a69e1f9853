package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/lintang-b-s/cvrp/pkg/http"
	"github.com/lintang-b-s/cvrp/pkg/http/usecases"
	"github.com/lintang-b-s/cvrp/pkg/instance"
	"github.com/lintang-b-s/cvrp/pkg/logger"
	"github.com/lintang-b-s/cvrp/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	dataDir      = flag.String("dir", "", "directory of .vrp files (default: $CVRP_DATA_DIR, then the build default)")
	useRateLimit = flag.Bool("rate_limit", true, "enable the global request rate limiter")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	dir := *dataDir
	if dir == "" {
		dir = util.InstanceDir()
	}

	viper.SetDefault("INSTANCE_CACHE_SIZE", 64)
	loader := instance.NewLoader(logger, dir)
	instanceService, err := usecases.NewInstanceService(logger, loader, viper.GetInt("INSTANCE_CACHE_SIZE"))
	if err != nil {
		panic(err)
	}

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	logger.Info("CVRP Instance Server Started", zap.String("data_dir", loader.DataDir()))
	api := http.NewServer(logger).Use(ctx, *useRateLimit, instanceService)

	if signal := api.GracefulShutdown(); signal != nil {
		logger.Info("CVRP Instance Server Stopped", zap.String("signal", signal.String()))
	}
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
