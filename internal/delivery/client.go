package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultPageSize = 100

// Client reads published items from a Delivery-API style content
// repository. It only needs the project/environment ID; the API key is
// optional and passed through as a Bearer header when set.
type Client struct {
	BaseURL   string
	ProjectID string
	APIKey    string
	PageSize  int // items per request
	Client    *http.Client
}

func NewClient(baseURL, projectID, apiKey string) *Client {
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ProjectID: projectID,
		APIKey:    apiKey,
		PageSize:  defaultPageSize,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// System is the metadata block every delivered item carries.
type System struct {
	Name     string `json:"name"`
	Codename string `json:"codename"`
	Type     string `json:"type"`
	Language string `json:"language"`
}

type Element struct {
	Value string `json:"value"`
}

// RawItem is the wire shape consumed by the extractor: system metadata
// plus the requested element values keyed by element codename.
type RawItem struct {
	System   System             `json:"system"`
	Elements map[string]Element `json:"elements"`
}

type itemsResponse struct {
	Items      []RawItem `json:"items"`
	Pagination struct {
		Skip     int    `json:"skip"`
		Limit    int    `json:"limit"`
		Count    int    `json:"count"`
		NextPage string `json:"next_page"`
	} `json:"pagination"`
}

// FetchItems returns every item of the given type in the given language,
// restricted to the named elements, paging until the source is exhausted.
// Zero matches is not an error.
func (c *Client) FetchItems(ctx context.Context, typeID, language string, fieldNames []string) ([]RawItem, error) {
	return c.fetch(ctx, typeID, language, fieldNames, "", "")
}

// FetchItemsFiltered is FetchItems with an element equality filter
// (elements.<field>=<value>), used by the slug search strategies.
func (c *Client) FetchItemsFiltered(ctx context.Context, typeID, language, field, value string) ([]RawItem, error) {
	return c.fetch(ctx, typeID, language, []string{field}, field, value)
}

func (c *Client) fetch(ctx context.Context, typeID, language string, fieldNames []string, filterField, filterValue string) ([]RawItem, error) {
	if c.ProjectID == "" {
		return nil, fmt.Errorf("delivery: project id is not set")
	}

	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	var all []RawItem
	skip := 0

	for {
		u, err := url.Parse(c.BaseURL + "/" + c.ProjectID + "/items")
		if err != nil {
			return nil, fmt.Errorf("delivery: bad base url: %w", err)
		}
		q := u.Query()
		q.Set("system.type", typeID)
		q.Set("language", language)
		if len(fieldNames) > 0 {
			q.Set("elements", strings.Join(fieldNames, ","))
		}
		if filterField != "" {
			q.Set("elements."+filterField, filterValue)
		}
		q.Set("limit", fmt.Sprintf("%d", pageSize))
		q.Set("skip", fmt.Sprintf("%d", skip))
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, fmt.Errorf("delivery: build request: %w", err)
		}
		if c.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.APIKey)
		}

		httpClient := c.Client
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("delivery: request: %w", err)
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("delivery: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}

		var page itemsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("delivery: decode: %w", err)
		}

		all = append(all, page.Items...)

		if len(page.Items) < pageSize || page.Pagination.NextPage == "" {
			break
		}
		skip += pageSize
	}

	return all, nil
}
