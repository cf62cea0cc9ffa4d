package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sweem/internal/api"
	"sweem/internal/config"
	"sweem/internal/ui"
)

func main() {
	baseURL := flag.String("url", "", "backend base URL (overrides the config file)")
	flag.Parse()

	cfg, err := config.LoadOrCreate(config.ResolveConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}

	client := api.New(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)

	if err := ui.Run(client, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
