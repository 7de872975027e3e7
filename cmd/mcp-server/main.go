package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"slugwatch/internal/delivery"
	"slugwatch/internal/mcpserver"
	"slugwatch/internal/slugcheck"
	"slugwatch/pkg/utils"
)

func main() {
	httpAddr := flag.String("http", "", "HTTP server address (e.g. ':8090'); stdio when empty")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

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

	s := mcpserver.NewServer(detector, cfg)

	if *httpAddr != "" {
		log.Printf("Starting MCP server on HTTP address: %s", *httpAddr)
		httpServer := server.NewStreamableHTTPServer(s)
		if err := httpServer.Start(*httpAddr); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}

	log.Println("Starting MCP server in stdio mode...")
	if err := server.ServeStdio(s); err != nil {
		log.Fatal(err)
	}
}
