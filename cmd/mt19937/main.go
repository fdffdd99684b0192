// Command mt19937 prints MT19937 output and runs quality checks on it.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("mt19937 failed")
		os.Exit(1)
	}
}
