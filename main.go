package main

import (
	"fmt"
	"os"

	"github.com/adsmock/ads-api-mock/cmd"
	"github.com/adsmock/ads-api-mock/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := cmd.NewRunCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
