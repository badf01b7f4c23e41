// Package scrape talks to the proxy backend that fronts Liquipedia and
// draft5.gg, and turns the raw HTML it returns into structured data.
package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client fetches third-party pages, going through the proxy backend when
// configured (the browser build cannot reach the sites directly).
type Client struct {
	http     *resty.Client
	rendered *resty.Client // longer timeout: the renderer executes page JS
	proxyURL string
	useProxy bool
}

func NewClient(proxyURL string, useProxy bool) *Client {
	return &Client{
		http:     resty.New().SetTimeout(5 * time.Second).SetHeader("User-Agent", browserUserAgent),
		rendered: resty.New().SetTimeout(30 * time.Second),
		proxyURL: strings.TrimRight(proxyURL, "/"),
		useProxy: useProxy,
	}
}

type proxyResponse struct {
	HTML string `json:"html"`
}

// FetchLiquipedia returns the raw HTML of a Liquipedia team page through
// the proxy. Fails when the proxy is disabled: there is no direct path.
func (c *Client) FetchLiquipedia(ctx context.Context, page string) (string, error) {
	if !c.useProxy {
		return "", fmt.Errorf("proxy disabled, no data source for page %q", page)
	}

	var out proxyResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", page).
		SetResult(&out).
		Get(c.proxyURL + "/liquipedia")
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", page, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching %s: proxy returned %s", page, resp.Status())
	}
	if out.HTML == "" {
		return "", fmt.Errorf("fetching %s: empty proxy response", page)
	}
	return out.HTML, nil
}

// FetchDraft5 returns the raw HTML of a draft5.gg URL. rendered selects the
// headless-browser route so JavaScript-built markup is present.
func (c *Client) FetchDraft5(ctx context.Context, url string, rendered bool) (string, error) {
	if !c.useProxy {
		resp, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			return "", fmt.Errorf("fetching %s: %w", url, err)
		}
		if resp.IsError() {
			return "", fmt.Errorf("fetching %s: %s", url, resp.Status())
		}
		return resp.String(), nil
	}

	route := "/draft5"
	client := c.http
	if rendered {
		route = "/draft5/puppeteer"
		client = c.rendered
	}

	var out proxyResponse
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParam("url", url).
		SetResult(&out).
		Get(c.proxyURL + route)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetching %s: proxy returned %s", url, resp.Status())
	}
	if out.HTML == "" {
		return "", fmt.Errorf("fetching %s: empty proxy response", url)
	}
	return out.HTML, nil
}
