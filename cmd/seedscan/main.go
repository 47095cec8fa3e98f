package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "seedscan CLI"
	app.Usage = "derive wallets from a seed phrase and check their balances"
	app.Commands = append(
		app.Commands,
		&derive,
		&scan,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func printRespJSON(resp interface{}) {
	raw, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(raw))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[seedscan] %v\n", err)
	os.Exit(1)
}
