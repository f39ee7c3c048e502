package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	lhttp "github.com/AndreyVLZ/lotto/internal/lotto/app/http"
	"github.com/AndreyVLZ/lotto/internal/lotto/app/http/handler"
	"github.com/AndreyVLZ/lotto/internal/lotto/app/internal/model/money"
	m "github.com/AndreyVLZ/lotto/internal/lotto/app/middle"
	purSrv "github.com/AndreyVLZ/lotto/internal/lotto/app/service/purchase"
)

type api interface {
	Start() error
	Stop(context.Context) error
}

type app struct {
	api     api
	handler http.Handler
	log     *slog.Logger
	cfg     *Config
}

func New(cfg *Config) (*app, error) {
	return newApp(cfg, os.Stdout)
}

func newApp(cfg *Config, w io.Writer) (*app, error) {
	log, err := initLog(w, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init log: %w", err)
	}

	price, err := money.From(cfg.TicketPrice)
	if err != nil {
		return nil, fmt.Errorf("ticket price: %w", err)
	}

	srv, err := purSrv.NewService(price, cfg.MaxTickets, log) // service
	if err != nil {
		return nil, err
	}

	purchaseHandler := handler.NewPurchaseHandler(srv, log)

	r := lhttp.NewRouter()

	// группа маршрутов lotto
	r.Group("/api/lotto", func(r lhttp.Router) { // prefix
		r.Use(m.Recover(log)) // middle group
		r.Use(m.Logger(log))

		r.Handle("/purchase", // pattern
			m.Use(
				purchaseHandler.Purchase(), // handler
				m.Post(),                   // check method
				m.TextPlain(),              // check contentType
			),
		)

		r.Handle("/price",
			m.Use(
				purchaseHandler.Price(),
				m.Get(),
			),
		)
	})

	return &app{
		api:     lhttp.NewServer(lhttp.ServerConfig{Addr: cfg.Addr}, r),
		handler: r,
		log:     log,
		cfg:     cfg,
	}, nil
}

func (app *app) Start() error {
	app.log.Info("start server",
		"addr", app.cfg.Addr,
		"ticketPrice", app.cfg.TicketPrice,
		"maxTickets", app.cfg.MaxTickets,
	)

	return app.api.Start()
}

func (app *app) Stop(ctx context.Context) error {
	ctxTimeout, stopTimeout := context.WithTimeout(ctx, 5*time.Second)
	defer stopTimeout()

	if err := app.api.Stop(ctxTimeout); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}

	app.log.Info("server stopped")

	return nil
}

func initLog(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: lvl,
	}

	return slog.New(slog.NewJSONHandler(w, opts)), nil
}
