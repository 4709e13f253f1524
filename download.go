package hvsampledata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// download streams a remote dataset into the cache.
//
// The body is written to a unique temp file while being hashed, verified
// against the catalog SHA-256 when one is declared, and renamed into place
// only after a fully successful transfer. Failures remove the temp file and
// surface to the caller; there is no internal retry.
func download(ctx context.Context, client *http.Client, desc Descriptor, rawURL, target string) error {
	slog.Info("downloading dataset", "dataset", desc.Name, "url", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return newDownloadFailed(desc.Name, rawURL, err)
	}
	req.Header.Set("User-Agent", "hvsampledata/"+Version)

	resp, err := client.Do(req)
	if err != nil {
		return newDownloadFailed(desc.Name, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newDownloadFailed(desc.Name, rawURL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return newDownloadFailed(desc.Name, rawURL, fmt.Errorf("create cache dir: %w", err))
	}

	tmp := target + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return newDownloadFailed(desc.Name, rawURL, fmt.Errorf("create temp file: %w", err))
	}

	hash := sha256.New()
	_, err = io.Copy(io.MultiWriter(f, hash), resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return newDownloadFailed(desc.Name, rawURL, err)
	}

	if desc.SHA256 != "" {
		got := hex.EncodeToString(hash.Sum(nil))
		if got != desc.SHA256 {
			os.Remove(tmp)
			return newHashMismatch(desc.Name, rawURL, desc.SHA256, got)
		}
	}

	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return newDownloadFailed(desc.Name, rawURL, fmt.Errorf("rename temp file: %w", err))
	}

	slog.Info("dataset cached", "dataset", desc.Name, "path", target)
	return nil
}
