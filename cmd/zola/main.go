// SPDX-License-Identifier: MIT

// Command zola serves skies of wishes and draws constellations between them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "zola:", err)
		os.Exit(1)
	}
}
