// Package catalog loads menus from YAML documents, either one of the embedded
// presets or a file supplied by the operator.
package catalog

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
	"github.com/Apurer/bites-ordering-api/internal/domains/menu/ports"
)

// DefaultPreset is used when no preset or file is configured.
const DefaultPreset = "devine-bites"

//go:embed presets/*.yaml
var presets embed.FS

var _ ports.Repository = (*Repository)(nil)

type document struct {
	Name  string         `koanf:"name"`
	Items []documentItem `koanf:"items"`
}

type documentItem struct {
	Name     string `koanf:"name"`
	Price    string `koanf:"price"`
	Image    string `koanf:"image"`
	Category string `koanf:"category"`
}

// Repository parses a menu document on Load.
type Repository struct {
	source string
	load   func(k *koanf.Koanf) error
}

// NewPresetRepository serves one of the embedded menus.
func NewPresetRepository(name string) (*Repository, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPreset
	}
	raw, err := presets.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown menu preset %q (available: %s)", name, strings.Join(Presets(), ", "))
	}
	return &Repository{
		source: "preset:" + name,
		load: func(k *koanf.Koanf) error {
			return k.Load(rawbytes.Provider(raw), yaml.Parser())
		},
	}, nil
}

// NewFileRepository reads the menu from a YAML file on disk.
func NewFileRepository(path string) *Repository {
	return &Repository{
		source: "file:" + path,
		load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		},
	}
}

// Presets lists the embedded menu names.
func Presets() []string {
	entries, err := presets.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Source describes where the menu comes from, for logs.
func (r *Repository) Source() string {
	return r.source
}

func (r *Repository) Load(_ context.Context) (*domain.Menu, error) {
	k := koanf.New(".")
	if err := r.load(k); err != nil {
		return nil, fmt.Errorf("read menu %s: %w", r.source, err)
	}
	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode menu %s: %w", r.source, err)
	}
	items := make([]domain.MenuItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
		if err != nil {
			return nil, fmt.Errorf("menu item %q has invalid price %q: %w", it.Name, it.Price, err)
		}
		items = append(items, domain.MenuItem{
			Name:     it.Name,
			Price:    price,
			ImageRef: it.Image,
			Category: it.Category,
		})
	}
	menu, err := domain.NewMenu(items)
	if err != nil {
		return nil, fmt.Errorf("menu %s: %w", r.source, err)
	}
	return menu, nil
}
