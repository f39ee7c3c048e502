package http

import (
	"context"
	"net/http"
	"time"
)

type server struct {
	server *http.Server
}

type ServerConfig struct {
	Addr string
}

func NewServer(cfg ServerConfig, handler http.Handler) server {
	return server{
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s server) Stop(ctx context.Context) error { return s.server.Shutdown(ctx) }
