package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/oluccaa/qualidade-sub001/internal/buildinfo"
	"github.com/oluccaa/qualidade-sub001/internal/client/cli"
	"github.com/oluccaa/qualidade-sub001/internal/client/client"
	"github.com/oluccaa/qualidade-sub001/internal/client/config"
	"github.com/oluccaa/qualidade-sub001/internal/client/prefs"
	"github.com/oluccaa/qualidade-sub001/internal/client/session"
	"github.com/oluccaa/qualidade-sub001/internal/client/tui"
	"github.com/oluccaa/qualidade-sub001/internal/filex"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	if !cfg.TUI {
		buildinfo.PrintBuildData(os.Stdout)
	}

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := filex.OpenAppend(cfg.LogFile)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, logOut)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sess := session.New()
	backend, err := client.NewGRPCClient(cfg.ServerEndpointAddr, sess, cfg.RequestTimeout, client.WithLogger(logger))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer backend.Close()

	store, err := prefs.Open(ctx, cfg.StateFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	if cfg.TUI {
		m := tui.New(ctx, backend, sess, logger, cfg.PageSize)
		m.UsePreferences(store)
		if err := tui.Run(m); err != nil {
			log.Printf("%v", err)
		}
		return
	}

	app := cli.NewApp(backend, sess, logger, cfg.PageSize)
	app.UsePreferences(store)
	app.Run(ctx)
}
