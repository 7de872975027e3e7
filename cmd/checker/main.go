package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"slugwatch/internal/delivery"
	"slugwatch/internal/slugcheck"
	"slugwatch/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	dcfg := utils.LoadDeliveryConfig()
	if dcfg.ProjectID == "" {
		log.Fatal("SLUGWATCH_PROJECT_ID is required")
	}
	scanCfg := utils.LoadScanConfig()
	cfg := slugcheck.Config{
		ContentType: scanCfg.ContentType,
		SlugFields:  scanCfg.SlugFields,
		Languages:   scanCfg.Languages,
	}

	client := delivery.NewClient(dcfg.BaseURL, dcfg.ProjectID, dcfg.APIKey)
	detector := slugcheck.NewDetector(client)

	res := detector.FindDuplicateSlugs(ctx, cfg)
	if res.Error != "" {
		log.Fatalf("scan failed: %s", res.Error)
	}

	log.Printf("scanned %d items, %d unique slugs", res.TotalItems, res.UniqueSlugs)

	if len(res.Duplicates) == 0 {
		log.Println("✅ no duplicate slugs found")
		return
	}

	log.Printf("found %d duplicated slugs:", len(res.Duplicates))
	for _, group := range res.Duplicates {
		fmt.Printf("\nslug %q used by %d entities:\n", group.Slug, len(group.Entities))
		for _, e := range group.Entities {
			fmt.Printf("  - %s (%s) in %s via %s\n", e.Name, e.Codename, e.Languages, e.SlugField)
		}
	}
}
