package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AndreyVLZ/lotto/internal/lotto/app"
)

func main() {
	addrPtr := flag.String("a", app.AddresDef, "адрес и порт запуска сервиса")
	pricePtr := flag.Int64("p", app.TicketPriceDef, "цена одного лотерейного билета")
	maxPtr := flag.Int64("m", app.MaxTicketsDef, "максимум билетов за одну покупку")
	levelPtr := flag.String("l", app.LogLevelDef, "уровень логирования (debug, info, warn, error)")
	flag.Parse()

	opts := []app.FuncOpt{
		app.SetAddr(*addrPtr),
		app.SetTicketPrice(*pricePtr),
		app.SetMaxTickets(*maxPtr),
		app.SetLogLevel(*levelPtr),
		// RUN_ADDRESS, TICKET_PRICE, MAX_TICKETS, LOG_LEVEL
		app.SetEnv(),
	}

	cfg, err := app.NewConfig(opts...)
	if err != nil {
		log.Printf("parse config: %v\n", err)
		os.Exit(1)
	}

	app, err := app.New(cfg)
	if err != nil {
		log.Printf("new app: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	chErr := make(chan error)
	go func(ce chan<- error) {
		defer close(ce)
		ce <- app.Start()
	}(chErr)

	ctxSignal, stopSignal := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignal()

	select {
	case <-ctxSignal.Done():
		log.Println("signal")
	case err := <-chErr:
		if err != nil {
			log.Printf("app start err %v\n", err)
		}
	}

	if err := app.Stop(ctx); err != nil {
		log.Printf("app stop err: %v\n", err)
	}

	log.Println("app stopped")
}
