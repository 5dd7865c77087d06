package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/stmtkit/stmtkit/internal/config"
	"github.com/stmtkit/stmtkit/internal/infrastructure"
)

func main() {
	var (
		all        = flag.Bool("all", false, "Run all seeders")
		statements = flag.Bool("statements", false, "Seed sample statement data")
		list       = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize infrastructure: %v", err)
	}
	defer infra.Close()

	ctx := context.Background()

	switch {
	case *all:
		if err := runAllSeeders(ctx, infra.DB); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *statements:
		if err := runSeeder(ctx, infra.DB, "statements"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("statements seeded successfully")

	default:
		fmt.Println("usage: seed [-all|-statements] [-list]")
		flag.PrintDefaults()
	}
}
