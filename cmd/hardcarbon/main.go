// The hardcarbon command exposes the prediction and search engine as a thin
// CLI: it parses flags, invokes the core packages, and renders structured
// results as JSON.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
