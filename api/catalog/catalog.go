package catalog

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fivelives/tablet-api/models"
)

var (
	itemPattern   = regexp.MustCompile(`\[\s*'([^']+)'\s*\]\s*=\s*\{([^}]+)\}`)
	weaponPattern = regexp.MustCompile(`\[\s*'([^']+)'\s*\]\s*=\s*\{([^{}]*(?:\{[^{}]*\})*[^{}]*)\}`)
	labelPattern  = regexp.MustCompile(`label\s*=\s*'([^']+)'`)
)

// Catalog lists the items known to ox_inventory by reading its data files
type Catalog struct {
	itemsPath   string
	weaponsPath string
}

// New returns a catalog over the items.lua and weapons.lua files
func New(itemsPath, weaponsPath string) *Catalog {
	return &Catalog{
		itemsPath:   itemsPath,
		weaponsPath: weaponsPath,
	}
}

// Items returns every item followed by every weapon. Entries without a label
// are skipped.
func (c *Catalog) Items() ([]models.CatalogItem, error) {
	items, err := parseFile(c.itemsPath, itemPattern)
	if err != nil {
		return nil, err
	}
	weapons, err := parseFile(c.weaponsPath, weaponPattern)
	if err != nil {
		return nil, err
	}
	return append(items, weapons...), nil
}

func parseFile(path string, pattern *regexp.Regexp) ([]models.CatalogItem, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item catalog: %w", err)
	}
	return Parse(string(content), pattern), nil
}

// Parse extracts {id, label} pairs from a Lua table source
func Parse(content string, pattern *regexp.Regexp) []models.CatalogItem {
	out := []models.CatalogItem{}
	for _, m := range pattern.FindAllStringSubmatch(content, -1) {
		label := labelPattern.FindStringSubmatch(m[2])
		if label == nil {
			continue
		}
		out = append(out, models.CatalogItem{ID: m[1], Name: label[1]})
	}
	return out
}
