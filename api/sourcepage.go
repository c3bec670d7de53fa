package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	html2md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ka2n/mealdb/log"
	"github.com/mackee/go-readability"
	"github.com/morikuni/failure/v2"
)

// WebBaseURL is where TheMealDB serves meal pages for browsers
const WebBaseURL = "https://www.themealdb.com/meal/"

// MealWebURL returns the browser URL of a meal
func MealWebURL(id string) *url.URL {
	u, _ := url.Parse(WebBaseURL)
	return u.JoinPath(id)
}

// SourcePage is the original recipe page a meal links to
type SourcePage struct {
	URL      *url.URL
	Markdown string
}

// FetchSourcePage downloads the page in the meal's strSource field and converts it to markdown
func (c *Client) FetchSourcePage(ctx context.Context, meal Meal) (*SourcePage, error) {
	raw, ok := meal.Get(FieldSource)
	if !ok || raw == "" {
		return nil, failure.New(ErrNoSourceURL,
			failure.Message("This meal has no source page"),
			failure.Context{"id": meal.ID()},
		)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, failure.New(ErrNoSourceURL,
			failure.Message("This meal has an invalid source page URL"),
			failure.Context{"id": meal.ID(), "url": raw},
		)
	}

	body, err := c.fetchHTML(ctx, u)
	if err != nil {
		return nil, err
	}

	md, err := markdown(u, body)
	if err != nil {
		log.Debug("Markdown conversion failed, using raw HTML", "url", u.String(), "error", err)
		md = body
	}

	return &SourcePage{URL: u, Markdown: md}, nil
}

func (c *Client) fetchHTML(ctx context.Context, u *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", failure.Wrap(err)
	}

	// Set user agent to avoid being blocked
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", failure.New(ErrNetwork,
			failure.Message("Failed to fetch the source page"),
			failure.Context{"url": u.String(), "error": err.Error()},
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", failure.New(ErrUnexpectedStatus,
			failure.Message("The source page returned an unexpected status"),
			failure.Context{"url": u.String(), "status": strconv.Itoa(resp.StatusCode)},
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure.Wrap(err)
	}
	return string(body), nil
}

func markdown(u *url.URL, body string) (string, error) {
	// Convert HTML to Markdown using readability first
	article, err := readability.Extract(body, readability.DefaultOptions())
	if err == nil && article.Root != nil {
		return readability.ToMarkdown(article.Root), nil
	}

	// If readability fails, use html2md as a fallback
	converter := html2md.NewConverter(u.Host, true, &html2md.Options{})
	return converter.ConvertString(body)
}
