// Command secretclient creates and claims one-time secrets against a running
// secretdrop server.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/secretdrop/secretdrop/api"
	"github.com/secretdrop/secretdrop/api/clients"
	"github.com/secretdrop/secretdrop/cmd/flags"
)

var secretFlag = &cli.StringFlag{
	Name:     "secret",
	Required: true,
	Usage:    "secret text to share",
}

var idFlag = &cli.StringFlag{
	Name:     "id",
	Required: true,
	Usage:    "one-time id to exchange for the secret",
}

func main() {
	app := &cli.App{
		Name:  "secretclient",
		Usage: "Create and claim one-time secrets",
		Flags: []cli.Flag{
			flags.ServerAddrFlag,
		},
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Store a secret and print its one-time id",
				Flags: []cli.Flag{secretFlag},
				Action: func(cCtx *cli.Context) error {
					client := &clients.SecretClient{ServerAddr: cCtx.String(flags.ServerAddrFlag.Name)}
					created, err := client.Create(cCtx.Context, cCtx.String(secretFlag.Name))
					if err != nil {
						return err
					}
					fmt.Printf("id: %s\nexpires_at: %s\n", created.ID, created.ExpiresAt)
					return nil
				},
			},
			{
				Name:  "claim",
				Usage: "Exchange an id for its secret (works exactly once)",
				Flags: []cli.Flag{idFlag},
				Action: func(cCtx *cli.Context) error {
					client := &clients.SecretClient{ServerAddr: cCtx.String(flags.ServerAddrFlag.Name)}
					secret, err := client.Retrieve(cCtx.Context, cCtx.String(idFlag.Name))
					if errors.Is(err, api.ErrSecretNotFound) {
						return cli.Exit("secret not found", 1)
					}
					if err != nil {
						return err
					}
					fmt.Println(secret)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
