package store

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"storefront/domain"
)

// PromotionSpec describes a promotion attached to a catalog entry.
type PromotionSpec struct {
	Kind    string  `json:"kind"` // "percent", "second_half_price", "third_one_free"
	Name    string  `json:"name"`
	Percent float64 `json:"percent,omitempty"`
}

// ProductSpec describes one catalog entry in a catalog file.
type ProductSpec struct {
	Kind        string         `json:"kind,omitempty"` // "standard" (default), "unlimited", "limited"
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Quantity    float64        `json:"quantity,omitempty"`
	MaxPerOrder float64        `json:"max_per_order,omitempty"`
	Promotion   *PromotionSpec `json:"promotion,omitempty"`
}

// BuildPromotion constructs a domain.Promotion from its spec record.
func BuildPromotion(spec PromotionSpec) (domain.Promotion, error) {
	switch spec.Kind {
	case "percent":
		return domain.NewPercentDiscount(spec.Name, spec.Percent)
	case "second_half_price":
		return domain.NewSecondHalfPrice(spec.Name), nil
	case "third_one_free":
		return domain.NewThirdOneFree(spec.Name), nil
	default:
		return nil, fmt.Errorf("unknown promotion kind: %s", spec.Kind)
	}
}

// BuildProduct constructs a product variant by kind and attaches its
// promotion, if any. An empty kind means "standard".
func BuildProduct(spec ProductSpec) (domain.Product, error) {
	var (
		p   domain.Product
		err error
	)
	switch spec.Kind {
	case "", "standard":
		p, err = domain.NewProduct(spec.Name, spec.Price, spec.Quantity)
	case "unlimited":
		p, err = domain.NewUnlimitedProduct(spec.Name, spec.Price)
	case "limited":
		p, err = domain.NewLimitedProduct(spec.Name, spec.Price, spec.Quantity, spec.MaxPerOrder)
	default:
		return nil, fmt.Errorf("unknown product kind: %s", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	if spec.Promotion != nil {
		promo, err := BuildPromotion(*spec.Promotion)
		if err != nil {
			return nil, err
		}
		p.SetPromotion(promo)
	}
	return p, nil
}

// LoadCatalog reads a catalog file and returns a seeded Store. The file holds
// either a JSON array of ProductSpec or NDJSON with one spec per line.
func LoadCatalog(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	btrim := bytes.TrimSpace(b)
	if len(btrim) == 0 {
		return nil, fmt.Errorf("empty catalog file: %s", path)
	}

	var specs []ProductSpec

	// JSON array
	if btrim[0] == '[' {
		if err := json.Unmarshal(btrim, &specs); err != nil {
			return nil, err
		}
	} else {
		// NDJSON or single JSON object
		scanner := bufio.NewScanner(bytes.NewReader(btrim))
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var spec ProductSpec
			if err := json.Unmarshal(line, &spec); err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	s := New()
	for _, spec := range specs {
		p, err := BuildProduct(spec)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", spec.Name, err)
		}
		s.AddProduct(p)
	}
	return s, nil
}

// DefaultCatalog returns the built-in demo catalog used when no catalog file
// is configured.
func DefaultCatalog() *Store {
	macbook, _ := domain.NewProduct("MacBook Air M2", 1450, 100)
	earbuds, _ := domain.NewProduct("Bose QuietComfort Earbuds", 250, 500)
	pixel, _ := domain.NewProduct("Google Pixel 7", 500, 250)
	license, _ := domain.NewUnlimitedProduct("Windows License", 125)
	shipping, _ := domain.NewLimitedProduct("Shipping", 10, 250, 1)

	thirtyOff, _ := domain.NewPercentDiscount("30% off!", 30)
	macbook.SetPromotion(domain.NewSecondHalfPrice("Second Half price!"))
	earbuds.SetPromotion(domain.NewThirdOneFree("Third One Free!"))
	pixel.SetPromotion(thirtyOff)

	return New(macbook, earbuds, pixel, license, shipping)
}
