// Package sales totals sales records against a product price catalogue.
//
// Both documents are loosely typed lists of objects. Malformed entries are
// skipped and reported as issues; they never abort the computation.
package sales

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"numkit/internal/input"
)

// ErrInvalidFormat is returned for a document that cannot be decoded.
var ErrInvalidFormat = errors.New("invalid document")

// LoadFile decodes a JSON document, or a YAML document for .yaml/.yml paths.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", input.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading '%s': %w", path, err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %v", ErrInvalidFormat, path, err)
	}
	return doc, nil
}

// BuildPriceMap indexes catalogue entries by title. Entries without a string
// title or a numeric price are skipped.
func BuildPriceMap(catalogue any) (map[string]float64, []string) {
	prices := make(map[string]float64)
	items, ok := catalogue.([]any)
	if !ok {
		return prices, []string{"Error: Invalid catalogue format. Expected a list of products."}
	}

	var issues []string
	for _, item := range items {
		obj, _ := asObject(item)
		title, okTitle := obj["title"].(string)
		price, okPrice := number(obj["price"])
		if !okTitle || !okPrice {
			issues = append(issues, fmt.Sprintf("Warning: Skipped invalid item in catalogue: %v", item))
			continue
		}
		prices[title] = price
	}
	return prices, issues
}

// TotalCost sums price * quantity over the sales records. Records naming an
// unknown product or carrying a non-numeric quantity are skipped.
func TotalCost(prices map[string]float64, records any) (float64, []string) {
	list, ok := records.([]any)
	if !ok {
		return 0, []string{"Error: Invalid sales format. Expected a list of sales."}
	}

	var (
		total  float64
		issues []string
	)
	for _, rec := range list {
		obj, _ := asObject(rec)
		product := obj["Product"]
		title, _ := product.(string)
		price, known := prices[title]
		if !known {
			issues = append(issues, fmt.Sprintf("Error: Product '%v' not found in price catalogue.", displayValue(product)))
			continue
		}
		qty, ok := number(obj["Quantity"])
		if !ok {
			issues = append(issues, fmt.Sprintf("Error: Invalid quantity for product '%s'.", title))
			continue
		}
		total += price * qty
	}
	return total, issues
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return map[string]any{}, false
	}
}

// number accepts the numeric types produced by the JSON and YAML decoders.
// Booleans are not numbers.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func displayValue(v any) any {
	if v == nil {
		return "None"
	}
	return v
}
