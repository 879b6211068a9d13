package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/secretdrop/secretdrop/cmd/flags"
	"github.com/secretdrop/secretdrop/httpserver"
	"github.com/secretdrop/secretdrop/storage"
)

func main() {
	app := &cli.App{
		Name:  "secretdrop-server",
		Usage: "Serve the one-time secret sharing API",
		Flags: append([]cli.Flag{
			flags.ListenAddrFlag,
			flags.SecretTTLFlag,
			flags.SweepIntervalFlag,
		}, flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			listenAddr := cCtx.String(flags.ListenAddrFlag.Name)
			secretTTL := cCtx.Duration(flags.SecretTTLFlag.Name)
			sweepInterval := cCtx.Duration(flags.SweepIntervalFlag.Name)

			logger := flags.SetupLogger(cCtx)
			cfg := flags.ConfigureServer(cCtx, logger, listenAddr)

			store := storage.NewMemoryStore(storage.Config{
				TTL:           secretTTL,
				SweepInterval: sweepInterval,
				Log:           logger,
			})
			defer store.Close()

			logger.Info("Secret store initialized", "ttl", secretTTL, "sweepInterval", sweepInterval)

			handler := httpserver.NewHandler(store, logger)
			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			// Unread secrets die with the process; there is nothing to drain
			// beyond in-flight requests.
			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
