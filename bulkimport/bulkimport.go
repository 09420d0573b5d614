// Package bulkimport loads the menu from a spreadsheet export. The sheet is
// CSV with the columns Category, Name, Description, Price and IsVeg; rows
// that cannot be stored are reported individually and the batch keeps going.
package bulkimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"restaurant-menu-api/models"
	"restaurant-menu-api/storage"
)

// placeholderImage is used until real photography is attached per item.
const placeholderImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c"

// categoryMap translates the human-readable category names used in the
// spreadsheet to canonical storage keys.
var categoryMap = map[string]string{
	"Nibbles":                              "nibbles",
	"Soups":                                "soups",
	"Titbits":                              "titbits",
	"Salads":                               "salads",
	"Mangalorean Style":                    "mangalorean-style",
	"Wok":                                  "wok",
	"Charcoal":                             "charcoal",
	"Continental":                          "continental",
	"Pasta":                                "pasta",
	"Artisan Pizzas":                       "artisan-pizzas",
	"Mini Burger Sliders":                  "mini-burger-sliders",
	"Entree (Main Course)":                 "entree",
	"Bao & Dim Sum":                        "bao-dimsum",
	"Indian Mains - Curries":               "indian-mains-curries",
	"Biryanis & Rice":                      "biryanis-rice",
	"Dals":                                 "dals",
	"Breads":                               "breads",
	"Asian Mains":                          "asian-mains",
	"Rice with Curry - Thai & Asian Bowls": "rice-with-curry---thai-asian-bowls",
	"Rice & Noodles":                       "rice-noodles",
	"Thai Bowls":                           "thai-bowls",
	"Starters":                             "starters",
	"Tandoor Starters":                     "tandoor-starters",
	"Oriental Starters":                    "oriental-starters",
	"Sizzlers":                             "sizzlers",
	"Sliders":                              "sliders",
	"Pizza":                                "pizza",
}

type RowFailure struct {
	Row    int    `json:"row"` // 1-based data row number, header excluded
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type Report struct {
	Total    int          `json:"total"`
	Imported int          `json:"imported"`
	Failures []RowFailure `json:"failures"`
}

// Run reads the CSV and inserts every row through the storage layer. With
// replace set, all partitions are cleared first (the full-reimport workflow).
// A category name missing from categoryMap falls back to a slug of the raw
// name — the escape hatch for categories the sheet grows before the registry
// does. Such rows fail the registry check and land in the report instead of
// aborting the batch.
func Run(store *storage.Store, r io.Reader, replace bool) (*Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Category", "Name", "Price"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	if replace {
		if err := store.ClearAllMenuItems(); err != nil {
			return nil, err
		}
	}

	report := &Report{Failures: []RowFailure{}}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", report.Total+1, err)
		}
		report.Total++

		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := get("Name")
		rawCategory := get("Category")
		category, ok := categoryMap[rawCategory]
		if !ok {
			category = Slugify(rawCategory)
		}

		_, err = store.AddMenuItem(models.MenuItem{
			Name:        name,
			Description: get("Description"),
			Price:       get("Price"),
			Category:    category,
			IsVeg:       parseBool(get("IsVeg")),
			Image:       placeholderImage,
			IsAvailable: true,
		})
		if err != nil {
			report.Failures = append(report.Failures, RowFailure{
				Row:    report.Total,
				Name:   name,
				Reason: err.Error(),
			})
			continue
		}
		report.Imported++
	}
	return report, nil
}

// Slugify lowercases a category name and turns spaces into hyphens, matching
// the convention the canonical keys follow.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	}
	return false
}
