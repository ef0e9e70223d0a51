// Command runclub runs the run-club booking bot.
package main

import (
	"log"

	"github.com/m3rciful/runclub/bots/runclub"
	corecmd "github.com/m3rciful/runclub/core/cmd"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      corecmd.DefaultConfigEnvVar,
		DefaultConfigPath: "config.yaml",
		LoadConfig:        runclub.LoadConfig,
		Bootstrap:         runclub.Bootstrap,
	})
	if err != nil {
		log.Fatalf("runclub: %v", err)
	}
}
