package cafe

import "time"

// FeatureList is the fixed vocabulary of feature tags a café can carry.
var FeatureList = []string{
	"parking",
	"wifi",
	"outlets",
	"work_friendly",
	"time_limit",
	"outdoor_seating",
}

type Rating struct {
	Overall float64 `json:"overall"` // derived, never user-entered
	Vibe    float64 `json:"vibe"`
	Staff   float64 `json:"staff"`
	Seats   float64 `json:"seats"`
}

type Order struct {
	Person string  `json:"person"`
	Rating float64 `json:"rating"`
	Notes  string  `json:"notes"`
}

// LineItem is a single beverage or food entry.
type LineItem struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Notes  string  `json:"notes"`
}

type Cafe struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
	Rating      Rating     `json:"rating"`
	Orders      []Order    `json:"orders"`
	Beverages   []LineItem `json:"beverages"`
	Foods       []LineItem `json:"foods"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Totals carries the computed cost breakdown for a café detail view.
type Totals struct {
	BeverageSubtotal          float64 `json:"beverage_subtotal"`
	FoodSubtotal              float64 `json:"food_subtotal"`
	GrandTotal                float64 `json:"grand_total"`
	BeverageSubtotalFormatted string  `json:"beverage_subtotal_formatted"`
	FoodSubtotalFormatted     string  `json:"food_subtotal_formatted"`
	GrandTotalFormatted       string  `json:"grand_total_formatted"`
}
