package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testItem(codename, slug string) RawItem {
	return RawItem{
		System: System{
			Name:     codename,
			Codename: codename,
			Type:     "page",
			Language: "en",
		},
		Elements: map[string]Element{
			"url": {Value: slug},
		},
	}
}

func writePage(w http.ResponseWriter, items []RawItem, skip, limit int, nextPage string) {
	resp := itemsResponse{Items: items}
	resp.Pagination.Skip = skip
	resp.Pagination.Limit = limit
	resp.Pagination.Count = len(items)
	resp.Pagination.NextPage = nextPage
	_ = json.NewEncoder(w).Encode(resp)
}

func TestFetchItemsPaginates(t *testing.T) {
	var requests []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)

		q := r.URL.Query()
		require.Equal(t, "page", q.Get("system.type"))
		require.Equal(t, "en", q.Get("language"))
		require.Equal(t, "url,url_slug", q.Get("elements"))

		switch q.Get("skip") {
		case "0":
			writePage(w, []RawItem{testItem("home", "home"), testItem("about", "about")}, 0, 2, "next")
		case "2":
			writePage(w, []RawItem{testItem("contact", "contact")}, 2, 2, "")
		default:
			t.Errorf("unexpected skip value %q", q.Get("skip"))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "proj-1", "")
	client.PageSize = 2

	items, err := client.FetchItems(context.Background(), "page", "en", []string{"url", "url_slug"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "contact", items[2].System.Codename)
	require.Len(t, requests, 2)
}

func TestFetchItemsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePage(w, nil, 0, 100, "")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "proj-1", "")
	items, err := client.FetchItems(context.Background(), "page", "en", []string{"url"})
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestFetchItemsSendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		writePage(w, nil, 0, 100, "")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "proj-1", "secret-key")
	_, err := client.FetchItems(context.Background(), "page", "en", []string{"url"})
	require.NoError(t, err)
}

func TestFetchItemsFiltered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "contact", q.Get("elements.url"))
		require.Equal(t, "url", q.Get("elements"))
		writePage(w, []RawItem{testItem("contact_page", "contact")}, 0, 100, "")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "proj-1", "")
	items, err := client.FetchItemsFiltered(context.Background(), "page", "en", "url", "contact")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestFetchItemsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"missing key"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "proj-1", "")
	_, err := client.FetchItems(context.Background(), "page", "en", []string{"url"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 401")
}

func TestFetchItemsRequiresProject(t *testing.T) {
	client := NewClient("http://localhost", "", "")
	_, err := client.FetchItems(context.Background(), "page", "en", []string{"url"})
	require.Error(t, err)
}
