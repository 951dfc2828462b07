// Command mcmwallet is the CLI entrypoint for the Mochimo offline
// wallet: mnemonic generation, account derivation, and transaction
// signing, all without touching the network.
package main

import (
	"fmt"
	"os"

	"github.com/adequatesystems/mochimo-wallet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
