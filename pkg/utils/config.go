package utils

import (
	"os"
	"strings"
)

type DeliveryConfig struct {
	BaseURL   string
	ProjectID string
	APIKey    string
}

type ScanConfig struct {
	ContentType string
	SlugFields  []string
	Languages   []string
}

func LoadDeliveryConfig() DeliveryConfig {
	base := os.Getenv("SLUGWATCH_DELIVERY_URL")
	if base == "" {
		base = "https://deliver.kontent.ai"
	}

	return DeliveryConfig{
		BaseURL:   base,
		ProjectID: os.Getenv("SLUGWATCH_PROJECT_ID"),
		APIKey:    os.Getenv("SLUGWATCH_API_KEY"),
	}
}

func LoadScanConfig() ScanConfig {
	contentType := os.Getenv("SLUGWATCH_CONTENT_TYPE")
	if contentType == "" {
		contentType = "page"
	}

	return ScanConfig{
		ContentType: contentType,
		SlugFields:  envList("SLUGWATCH_SLUG_FIELDS", []string{"url", "url_slug"}),
		Languages:   envList("SLUGWATCH_LANGUAGES", []string{"default"}),
	}
}

func envList(key string, def []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
