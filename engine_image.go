package hvsampledata

import (
	"context"
	"os"

	"golang.org/x/image/tiff"
)

// loadTIFF decodes a TIFF file into an image.Image.
func loadTIFF(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tiff.Decode(f)
}
