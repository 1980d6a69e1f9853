package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/cvrp/pkg/http/router"
	"github.com/lintang-b-s/cvrp/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/cvrp/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log  *zap.Logger
	done chan struct{}
	err  error
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the API in the background. Wait returns once it has stopped.
func (s *Server) Use(
	ctx context.Context,
	useRateLimit bool,
	instanceService controllers.InstanceService,
) *Server {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, config, useRateLimit, instanceService)
	})

	s.done = make(chan struct{})
	go func() {
		s.err = g.Wait()
		close(s.done)
	}()

	return s
}

// Wait blocks until the API has stopped and returns the error it stopped with.
func (s *Server) Wait() error {
	if s.done == nil {
		return nil
	}
	<-s.done
	return s.err
}

// GracefulShutdown blocks until SIGINT or SIGTERM arrives or the API stops on its
// own, e.g. when the port cannot be bound. The signal is nil in the second case.
func (s *Server) GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		return sig
	case <-s.done:
		return nil
	}
}
