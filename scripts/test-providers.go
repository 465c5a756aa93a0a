package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/services/extractor"
	"github.com/tunegrab/tunegrab/internal/services/innertube"
	"github.com/tunegrab/tunegrab/internal/services/ytmusic"
)

func main() {
	fmt.Println("Provider Smoke Check")
	fmt.Println("====================")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Upstream.YouTubeCookie == "" {
		fmt.Println("YOUTUBE_COOKIE not set - requests go out anonymously")
	}
	fmt.Printf("Geo location: %s\n", cfg.Upstream.GeoLocation)
	fmt.Printf("Upstream timeout: %s\n", cfg.Upstream.Timeout)
	fmt.Println()

	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	opts := []innertube.Option{
		innertube.WithHTTPClient(httpClient),
		innertube.WithGeoLocation(cfg.Upstream.GeoLocation),
	}
	if cfg.Upstream.YouTubeCookie != "" {
		opts = append(opts, innertube.WithCookie(cfg.Upstream.YouTubeCookie))
	}

	ctx := context.Background()

	fmt.Println("Checking metadata provider...")
	metadata := ytmusic.NewClient(opts...)
	tracks, err := metadata.Search(ctx, "never gonna give you up", 3)
	if err != nil {
		fmt.Printf("Metadata search failed: %v\n", err)
	} else {
		fmt.Printf("Metadata search successful, %d tracks\n", len(tracks))
		for _, tr := range tracks {
			fmt.Printf("  %s  %s\n", tr.VideoID, tr.Title)
		}
	}

	fmt.Println("\nChecking extraction provider...")
	extract := extractor.NewClient(opts...)
	info, err := extract.GetVideo(ctx, "dQw4w9WgXcQ")
	if err != nil {
		log.Fatalf("Video lookup failed: %v", err)
	}
	fmt.Printf("Video lookup successful: %s (%ds)\n", info.Title, info.DurationSec)

	audioURL, err := extract.ResolveAudioURL(ctx, info.ID)
	if err != nil {
		fmt.Printf("Audio URL resolution failed: %v\n", err)
	} else {
		fmt.Printf("Audio URL resolved, %d characters\n", len(audioURL))
	}
}
