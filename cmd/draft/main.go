// Command draft prints one generated outbound message or listing description.
//
//	draft -lead "John Doe" -property "Modern Sunset Villa" -channel sms
//	draft -describe "3 bed, 2 bath craftsman near the park"
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/config"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/generation"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

func main() {
	var (
		configPath   = flag.String("config", "config/estateflow.yaml", "path to the YAML config file")
		leadName     = flag.String("lead", "", "lead name to address")
		propertyName = flag.String("property", "", "property the lead is interested in")
		channelName  = flag.String("channel", "sms", "channel: sms or whatsapp")
		draftContext = flag.String("context", "", "what the message is about")
		describe     = flag.String("describe", "", "write a listing description from these details instead")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ApplyEnv()

	ctx := context.Background()
	client, _ := generation.NewClientFromConfig(ctx, cfg)

	if *describe != "" {
		fmt.Println(client.DraftPropertyDescription(ctx, *describe))
		return
	}

	if *leadName == "" || *propertyName == "" {
		fmt.Fprintln(os.Stderr, "draft: -lead and -property are required (or use -describe)")
		flag.Usage()
		os.Exit(2)
	}
	channel, err := models.ParseChannel(*channelName)
	if err != nil {
		log.Fatalf("draft: %v", err)
	}
	if *draftContext == "" {
		*draftContext = cfg.Generation.Context
	}

	fmt.Println(client.DraftMessage(ctx, channel, *leadName, *propertyName, *draftContext))
}
