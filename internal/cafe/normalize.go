package cafe

import (
	"errors"
	"strings"
	"time"
)

var ErrNameRequired = errors.New("cafe name is required")

// clampRating forces a star rating into [0,5]. 0 means "unset".
func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func clampPrice(p float64) float64 {
	if p < 0 {
		return 0
	}
	return p
}

// NormalizeLineItems trims and coerces raw form rows, then drops rows that
// carry no information at all (blank name, zero price, zero rating, blank
// notes). Surviving rows keep their submitted order.
func NormalizeLineItems(rows []LineItemRow) []LineItem {
	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		item := LineItem{
			Name:   strings.TrimSpace(row.Name),
			Price:  clampPrice(row.Price.Float64()),
			Rating: clampRating(row.Rating),
			Notes:  strings.TrimSpace(row.Notes),
		}
		if item.Name == "" && item.Price == 0 && item.Rating == 0 && item.Notes == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// NormalizeFeatures keeps only tags from the fixed vocabulary, without
// duplicates, in vocabulary order.
func NormalizeFeatures(selected []string) []string {
	chosen := make(map[string]bool, len(selected))
	for _, f := range selected {
		chosen[strings.TrimSpace(f)] = true
	}

	features := make([]string, 0, len(FeatureList))
	for _, f := range FeatureList {
		if chosen[f] {
			features = append(features, f)
		}
	}
	return features
}

// normalize builds the canonical record shared by create and update.
func normalize(form Form) (*Cafe, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	order := Order{
		Person: strings.TrimSpace(form.Order.Person),
		Rating: clampRating(form.Order.Rating),
		Notes:  strings.TrimSpace(form.Order.Notes),
	}
	if order.Person == "" {
		order.Person = strings.TrimSpace(form.CreatedBy)
	}

	cafe := &Cafe{
		Name:        name,
		Location:    strings.TrimSpace(form.Location),
		Description: strings.TrimSpace(form.Description),
		Features:    NormalizeFeatures(form.Features),
		Orders:      []Order{order},
		Beverages:   NormalizeLineItems(form.Beverages),
		Foods:       NormalizeLineItems(form.Foods),
	}

	cafe.Rating = Rating{
		Vibe:  clampRating(form.Vibe),
		Staff: clampRating(form.Staff),
		Seats: clampRating(form.Seats),
	}
	cafe.Rating.Overall = OverallRating(SubRatings(cafe))

	return cafe, nil
}

// BuildForCreate turns a raw form payload into a new canonical record. The
// only rejectable condition is a blank name; every other malformed field
// degrades to its zero value.
func BuildForCreate(form Form, now time.Time) (*Cafe, error) {
	cafe, err := normalize(form)
	if err != nil {
		return nil, err
	}

	cafe.ID = NewID("cafe")
	cafe.CreatedBy = strings.TrimSpace(form.CreatedBy)
	cafe.CreatedAt = now
	cafe.UpdatedAt = now
	return cafe, nil
}

// BuildForUpdate re-normalizes a form payload against an existing record,
// preserving id, creator, and creation time. Only updated_at is refreshed.
func BuildForUpdate(existing *Cafe, form Form, now time.Time) (*Cafe, error) {
	cafe, err := normalize(form)
	if err != nil {
		return nil, err
	}

	cafe.ID = existing.ID
	cafe.CreatedBy = existing.CreatedBy
	cafe.CreatedAt = existing.CreatedAt
	cafe.UpdatedAt = now

	if cafe.Orders[0].Person == "" {
		cafe.Orders[0].Person = existing.CreatedBy
	}
	return cafe, nil
}
