package hvsampledata

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

//go:embed data
var bundledFS embed.FS

// defaultTotalPoints is the synthetic_clusters row count when WithTotalPoints
// is omitted.
const defaultTotalPoints = 1000

// locate resolves a dataset to an on-disk path, populating the cache
// directory on first use.
//
// Bundled assets are materialized out of the embedded filesystem because the
// engine libraries open OS paths. Remote assets are downloaded once; two
// concurrent callers may both download, and the atomic rename makes that
// redundant rather than corrupting. Generated assets are synthesized
// deterministically, keyed by their generation parameters.
func locate(ctx context.Context, desc Descriptor, totalPoints int) (string, error) {
	cfg, err := loadSettings()
	if err != nil {
		return "", err
	}

	switch desc.Storage {
	case StorageBundled:
		target := filepath.Join(cfg.CacheDir, desc.filename())
		if fileExists(target) {
			return target, nil
		}
		blob, err := bundledFS.ReadFile("data/" + desc.filename())
		if err != nil {
			return "", newResourceUnavailable(desc.Name, err)
		}
		if err := writeAtomic(target, blob); err != nil {
			return "", newResourceUnavailable(desc.Name, err)
		}
		return target, nil

	case StorageRemote:
		rawURL, rel, err := remoteLocation(desc, cfg.BaseURL)
		if err != nil {
			return "", err
		}
		target := filepath.Join(cfg.CacheDir, filepath.FromSlash(rel))
		if fileExists(target) {
			return target, nil
		}
		if err := download(ctx, cfg.httpClient(), desc, rawURL, target); err != nil {
			return "", err
		}
		return target, nil

	case StorageGenerated:
		n := totalPoints
		if n == 0 {
			n = defaultTotalPoints
		}
		if n <= 0 || n%5 != 0 {
			return "", newIncompatibleOptions(desc.Name, "",
				fmt.Sprintf("total_points must be a multiple of 5, got %d", n))
		}
		target := filepath.Join(cfg.CacheDir, fmt.Sprintf("%s_%d.%s", desc.Name, n, desc.Format))
		if fileExists(target) {
			return target, nil
		}
		blob, err := generateClusters(n)
		if err != nil {
			return "", err
		}
		if err := writeAtomic(target, blob); err != nil {
			return "", fmt.Errorf("write generated dataset: %w", err)
		}
		return target, nil

	default:
		return "", fmt.Errorf("unknown storage %q for dataset %s", desc.Storage, desc.Name)
	}
}

// remoteLocation returns the effective download URL and the cache-relative
// path for a remote dataset. The cache path mirrors the URL path, so
// https://.../sensor/v1/data.parq lands at <cache>/sensor/v1/data.parq.
func remoteLocation(desc Descriptor, baseURL string) (string, string, error) {
	u, err := url.Parse(desc.URL)
	if err != nil {
		return "", "", newDownloadFailed(desc.Name, desc.URL, err)
	}
	rel := strings.TrimPrefix(u.Path, "/")
	if rel == "" {
		return "", "", newDownloadFailed(desc.Name, desc.URL, fmt.Errorf("url has no path"))
	}
	raw := desc.URL
	if baseURL != "" {
		raw = strings.TrimSuffix(baseURL, "/") + u.Path
	}
	return raw, rel, nil
}

// fileExists is the sole cache existence check: presence of the expected
// filename. No index, no metadata sidecar.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// writeAtomic writes blob to path via a unique temp file and rename, so an
// interrupted or concurrent writer never leaves a partial file at path.
func writeAtomic(path string, blob []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
