package cafe

import "math"

// OverallRating averages a set of sub-ratings into a single score, rounded to
// one decimal place. Zero entries mean "not rated" and are excluded; if
// nothing was rated the overall is 0.
func OverallRating(subs []float64) float64 {
	var sum float64
	var count int
	for _, r := range subs {
		if r == 0 {
			continue
		}
		sum += r
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*10) / 10
}

// SubRatings collects every individual rating a café carries: the order
// rating, every beverage and food rating, and the three ambience ratings.
func SubRatings(c *Cafe) []float64 {
	subs := make([]float64, 0, len(c.Orders)+len(c.Beverages)+len(c.Foods)+3)
	for _, o := range c.Orders {
		subs = append(subs, o.Rating)
	}
	for _, b := range c.Beverages {
		subs = append(subs, b.Rating)
	}
	for _, f := range c.Foods {
		subs = append(subs, f.Rating)
	}
	subs = append(subs, c.Rating.Vibe, c.Rating.Staff, c.Rating.Seats)
	return subs
}

// LineTotal sums the prices of a beverage or food list.
func LineTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// GrandTotal is the combined cost of everything ordered.
func GrandTotal(beverages, foods []LineItem) float64 {
	return LineTotal(beverages) + LineTotal(foods)
}

// ComputeTotals builds the full cost breakdown for a café.
func ComputeTotals(c *Cafe) Totals {
	bev := LineTotal(c.Beverages)
	food := LineTotal(c.Foods)
	return Totals{
		BeverageSubtotal:          bev,
		FoodSubtotal:              food,
		GrandTotal:                bev + food,
		BeverageSubtotalFormatted: FormatPHP(bev),
		FoodSubtotalFormatted:     FormatPHP(food),
		GrandTotalFormatted:       FormatPHP(bev + food),
	}
}
