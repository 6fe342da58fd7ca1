package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/lite"
	"github.com/indigo-web/lite/config"
)

func main() {
	cfg := config.Default()

	addr := flag.String("addr", "localhost:9000", "address to listen at")
	flag.StringVar(&cfg.Static.Root, "public", cfg.Static.Root, "directory of static files")
	flag.StringVar(&cfg.Templates.Root, "templates", cfg.Templates.Root, "directory of templates")
	flag.IntVar(&cfg.NET.MaxConns, "max-conns", cfg.NET.MaxConns, "maximal number of connections served at once")
	flag.IntVar(&cfg.NET.ReadBufferSize, "read-buffer", cfg.NET.ReadBufferSize, "size of the request read buffer")
	flag.DurationVar(&cfg.NET.ReadTimeout, "read-timeout", cfg.NET.ReadTimeout, "request read deadline, 0 disables it")
	debug := flag.Bool("debug", false, "enable debug logging")
	get := flag.String("get", "", "fetch the URL over a raw socket, print the response and exit")
	flag.Parse()

	if len(*get) > 0 {
		response, err := fetch(*get)
		if err != nil {
			fmt.Fprintln(os.Stderr, "lite:", err)
			os.Exit(1)
		}

		fmt.Println("--- Response from server ---")
		_, _ = os.Stdout.Write(response)
		return
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app := lite.New(*addr).
		Tune(cfg).
		Logger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("stopping server")
		app.Stop()
	}()

	if err := app.Serve(newRouter(cfg, app)); err != nil {
		logger.Error("serving", "err", err)
		os.Exit(1)
	}
}
