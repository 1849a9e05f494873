// Package article fetches a web page and extracts its readable text so it
// can be fed to the learning pipeline.
package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-shiori/go-readability"
)

// MaxBodySize caps how much HTML is read from an untrusted URL.
const MaxBodySize = 10 * 1024 * 1024

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses (<rp>...</rp>)
// from HTML content. Readability extracts all text including furigana, which
// leads to duplication (e.g. "漢字" becomes "漢字かんじ").
// It is safe on Shift_JIS bytes as well, because <, >, r, t, p are ASCII and
// < is never a trailing byte in Shift_JIS.
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

// Article is the readable part of a page.
type Article struct {
	URL      string
	Title    string
	Byline   string
	SiteName string
	Text     string
}

// Fetcher downloads pages. The zero value is usable.
type Fetcher struct {
	Client   *http.Client
	Attempts uint
	Delay    time.Duration
	Logger   *slog.Logger
}

// NewFetcher returns a Fetcher with a 30 second client timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: 30 * time.Second},
		Attempts: 3,
		Delay:    time.Second,
	}
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// Fetch downloads rawURL and extracts its article text. Server errors and
// 429 responses are retried; other 4xx responses fail immediately.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Article, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", pageURL.Scheme)
	}

	attempts := f.Attempts
	if attempts == 0 {
		attempts = 3
	}
	delay := f.Delay
	if delay <= 0 {
		delay = time.Second
	}

	var body []byte
	err = retry.Do(
		func() error {
			var err error
			body, err = f.get(ctx, rawURL)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			f.logger().Warn("retrying article fetch", "url", rawURL, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	parsed, err := readability.FromReader(bytes.NewReader(SanitizeRuby(body)), pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}
	return &Article{
		URL:      rawURL,
		Title:    parsed.Title,
		Byline:   parsed.Byline,
		SiteName: parsed.SiteName,
		Text:     strings.TrimSpace(parsed.TextContent),
	}, nil
}

var errTooLarge = errors.New("response body exceeds size limit")

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ja;q=0.8")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.Unrecoverable(err)
		}
		return nil, err
	}
	if resp.ContentLength > MaxBodySize {
		return nil, retry.Unrecoverable(errTooLarge)
	}

	// Read one byte past the limit to tell a full page from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > MaxBodySize {
		return nil, retry.Unrecoverable(errTooLarge)
	}
	return body, nil
}
