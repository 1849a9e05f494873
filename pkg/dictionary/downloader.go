package dictionary

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
)

const (
	repoOwner = "scriptin"
	repoName  = "jmdict-simplified"
)

// Downloader fetches the latest jmdict-simplified English common dictionary
// from its GitHub releases.
type Downloader struct {
	Client *http.Client
	// ReleaseURL is the GitHub "latest release" API endpoint.
	ReleaseURL string
	// Attempts is the number of tries per HTTP request.
	Attempts uint
	// Delay is the base retry delay, doubled on every attempt.
	Delay  time.Duration
	Logger *slog.Logger
}

// NewDownloader returns a Downloader for the public GitHub API.
func NewDownloader() *Downloader {
	return &Downloader{
		Client:     &http.Client{Timeout: 5 * time.Minute},
		ReleaseURL: fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", repoOwner, repoName),
		Attempts:   3,
		Delay:      time.Second,
	}
}

// EnsureDictionary downloads the dictionary to path unless a file is already there.
func EnsureDictionary(ctx context.Context, path string) error {
	return NewDownloader().Ensure(ctx, path)
}

func (d *Downloader) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Ensure checks if the dictionary exists at path. If not, it discovers the
// latest release, downloads it and extracts the JSON file to path.
func (d *Downloader) Ensure(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	log := d.logger()
	log.Info("dictionary not found, downloading", "path", path)

	var assetURL string
	if err := d.retry(ctx, func() error {
		u, err := d.latestAssetURL(ctx)
		assetURL = u
		return err
	}); err != nil {
		return fmt.Errorf("failed to find latest dictionary release: %w", err)
	}

	log.Info("downloading dictionary", "url", assetURL)
	return d.retry(ctx, func() error {
		return d.downloadAndExtract(ctx, assetURL, path)
	})
}

func (d *Downloader) retry(ctx context.Context, fn func() error) error {
	attempts := d.Attempts
	if attempts == 0 {
		attempts = 1
	}
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(d.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

// statusError is returned for non-200 responses; 4xx responses are not retried.
func statusError(resp *http.Response, what string) error {
	err := fmt.Errorf("%s returned status: %s", what, resp.Status)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return retry.Unrecoverable(err)
	}
	return err
}

func (d *Downloader) latestAssetURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.ReleaseURL, nil)
	if err != nil {
		return "", retry.Unrecoverable(err)
	}
	// GitHub requires a User-Agent.
	req.Header.Set("User-Agent", "translearn")

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp, "github api")
	}

	var release struct {
		Assets []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	for _, asset := range release.Assets {
		if strings.Contains(asset.Name, "jmdict-eng-common") && strings.HasSuffix(asset.Name, ".json.tgz") {
			return asset.BrowserDownloadURL, nil
		}
	}
	return "", retry.Unrecoverable(fmt.Errorf("no suitable dictionary asset found in latest release"))
}

func (d *Downloader) downloadAndExtract(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return retry.Unrecoverable(err)
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "download")
	}

	gzReader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return retry.Unrecoverable(fmt.Errorf("no json file found in downloaded archive"))
		}
		if err != nil {
			return fmt.Errorf("error reading tar archive: %w", err)
		}
		if header.Typeflag == tar.TypeReg && strings.HasSuffix(header.Name, ".json") {
			return writeAtomically(destPath, tarReader)
		}
	}
}

// writeAtomically writes r to a temporary file next to path and renames it
// into place, so an interrupted download never leaves a truncated dictionary.
func writeAtomically(path string, r io.Reader) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return retry.Unrecoverable(err)
	}
	tmp, err := os.CreateTemp(dir, ".jmdict-*.json")
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to create output file: %w", err))
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
