package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
  Car rental web frontend

  Flags:
    -config-path  Path to the config yaml file (default "config.yaml")
    -help         Show this message

  All settings can also be provided as environment variables, see
  config.yaml for the full list.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective non-secret configuration on startup.
func PrintConfig(cfg *Config) {
	fmt.Printf("server:     %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("rental api: %s (timeout %s)\n", cfg.RentalAPI.BaseURL, cfg.RentalAPI.Timeout)
	fmt.Printf("session:    ttl %s, secure %t\n", cfg.Session.TTL, cfg.Session.Secure)
	fmt.Printf("log level:  %s\n", cfg.LogLevel)
}
