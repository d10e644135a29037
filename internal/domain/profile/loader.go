package profile

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// defaultProfiles is the built-in role configuration used when no
// profiles file is configured.
//
//go:embed defaults.yaml
var defaultProfiles []byte

type catalogFile struct {
	Roles []RoleConfig `koanf:"roles"`
}

// bytesProvider feeds an in-memory YAML document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

func (b bytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("bytes provider does not support Read")
}

// Default returns the built-in catalog.
func Default(ctx context.Context) (*Catalog, error) {
	return Parse(ctx, defaultProfiles)
}

// Parse builds a Catalog from a YAML document.
func Parse(_ context.Context, data []byte) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadProfile, err)
	}
	return fromKoanf(k)
}

// LoadFile builds a Catalog from a YAML file on disk.
func LoadFile(_ context.Context, path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadProfile, path, err)
	}
	return fromKoanf(k)
}

// Load picks LoadFile when path is set and the built-in catalog otherwise.
func Load(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return Default(ctx)
	}
	return LoadFile(ctx, path)
}

func fromKoanf(k *koanf.Koanf) (*Catalog, error) {
	var cf catalogFile
	if err := k.UnmarshalWithConf("", &cf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadProfile, err)
	}
	return NewCatalog(cf.Roles)
}
