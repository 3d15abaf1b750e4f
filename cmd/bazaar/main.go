// Command bazaar is the terminal client for the synthetic market data stack.
// It opens the same databases as the server and prints quotes, movers,
// research bundles and books without going over HTTP.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
