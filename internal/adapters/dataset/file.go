package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/okian/scout/internal/domain/model"
)

// LoadFile reads a dataset from disk, choosing the format by extension.
func LoadFile(ctx context.Context, path string, opts ...Option) ([]model.Player, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(ctx, f, format, opts...)
}
