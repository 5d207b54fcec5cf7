package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/golden-vcr/tmi/internal/badges"
	"github.com/golden-vcr/tmi/internal/twitch"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := twitch.Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	client, err := twitch.NewClient(config)
	if err != nil {
		log.Fatalf("error initializing Twitch API client: %v", err)
	}

	// Fetch the global catalog, plus the catalog for each channel named on the command
	// line
	store := badges.NewStore(client, zap.NewNop())
	ctx := context.Background()
	if err := store.Refresh(ctx); err != nil {
		log.Fatalf("error fetching global badges: %v", err)
	}
	for _, arg := range os.Args[1:] {
		for _, channelName := range twitch.ParseChannelNames(arg) {
			if err := store.Join(ctx, channelName); err != nil {
				log.Fatalf("error fetching badges for channel %s: %v", channelName, err)
			}
		}
	}

	catalogs := store.Catalogs()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalogs); err != nil {
		log.Fatalf("error encoding badge catalogs: %v", err)
	}
}
