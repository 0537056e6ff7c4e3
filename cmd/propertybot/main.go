package main

import (
	"log"

	corecmd "github.com/James202017/real-estate-bots/core/cmd"
	"github.com/James202017/real-estate-bots/internal/app"
	"github.com/James202017/real-estate-bots/internal/bots"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "configs/propertybot.yaml",
		LoadConfig:        app.LoadConfig,
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			return app.Bootstrap(carrier, bots.Property())
		},
	})
	if err != nil {
		log.Fatalf("propertybot: %v", err)
	}
}
