package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"slugwatch/internal/slugcheck"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	global := flag.NewFlagSet("slugwatch", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 5 * time.Minute}

	switch args[0] {
	case "check":
		handleCheck(ctx, client, *baseURL, args[1:])
	case "search":
		handleSearch(ctx, client, *baseURL, args[1:])
	case "watch":
		handleWatch(*baseURL, args[1:])
	case "report":
		handleReport(ctx, client, *baseURL, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleCheck(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	languages := fs.String("languages", "", "comma-separated language codes")
	_ = fs.Parse(args)

	res, err := fetchDuplicates(ctx, client, baseURL, *languages)
	if err != nil {
		log.Fatalf("check failed: %v", err)
	}

	if len(res.Duplicates) == 0 {
		fmt.Printf("✅ no duplicate slugs (%d items, %d unique slugs)\n", res.TotalItems, res.UniqueSlugs)
		return
	}
	printJSON(res)
}

func handleSearch(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	slug := fs.String("slug", "", "slug value to look up")
	_ = fs.Parse(args)
	if *slug == "" {
		log.Fatal("slug is required")
	}

	u, err := url.Parse(baseURL + "/api/search")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := u.Query()
	qv.Set("slug", *slug)
	u.RawQuery = qv.Encode()

	var res slugcheck.SearchResult
	if err := doJSON(ctx, client, http.MethodGet, u.String(), &res); err != nil {
		log.Fatalf("search failed: %v", err)
	}
	printJSON(res)
}

func handleWatch(baseURL string, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
	_ = fs.Parse(args)

	endpoint := *wsURL
	if endpoint == "" {
		var err error
		endpoint, err = websocketURL(baseURL, "/ws")
		if err != nil {
			log.Fatalf("ws url: %v", err)
		}
	}
	if err := runWebSocket(endpoint); err != nil {
		log.Fatalf("watch failed: %v", err)
	}
}

func handleReport(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	out := fs.String("out", "data/duplicates.json", "output JSON path")
	languages := fs.String("languages", "", "comma-separated language codes")
	_ = fs.Parse(args)

	res, err := fetchDuplicates(ctx, client, baseURL, *languages)
	if err != nil {
		log.Fatalf("report failed: %v", err)
	}
	if err := writeJSON(*out, res); err != nil {
		log.Fatalf("write report failed: %v", err)
	}
	log.Printf("✅ wrote %d duplicate groups to %s", len(res.Duplicates), *out)
}

func fetchDuplicates(ctx context.Context, client *http.Client, baseURL, languages string) (slugcheck.DetectionResult, error) {
	var res slugcheck.DetectionResult

	u, err := url.Parse(baseURL + "/api/duplicates")
	if err != nil {
		return res, fmt.Errorf("invalid base url: %w", err)
	}
	if languages != "" {
		qv := u.Query()
		qv.Set("languages", languages)
		u.RawQuery = qv.Encode()
	}

	if err := doJSON(ctx, client, http.MethodGet, u.String(), &res); err != nil {
		return res, err
	}
	return res, nil
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[watch] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimSpace(string(msg)))
	}
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("slugwatch <command> [flags]")
	fmt.Println("commands:")
	fmt.Println("  check  [-languages en,de]       run a duplicate slug scan")
	fmt.Println("  search -slug <value>            find entities using a slug")
	fmt.Println("  watch  [-ws url]                stream scan progress events")
	fmt.Println("  report [-out file] [-languages] write scan result to JSON")
}
