package cart

import "fmt"

// FormatPrice renders integer cents as a display price: 2499 -> "$24.99".
// Integer math only, so amounts never drift through floats.
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// FormattedSummary is the display form of a Summary; free shipping shows
// as "FREE" rather than "$0.00".
type FormattedSummary struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Shipping string `json:"shipping"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

func FormatSummary(s Summary) FormattedSummary {
	shipping := FormatPrice(s.Shipping)
	if s.Shipping == 0 {
		shipping = "FREE"
	}
	return FormattedSummary{
		Subtotal: FormatPrice(s.Subtotal),
		Tax:      FormatPrice(s.Tax),
		Shipping: shipping,
		Discount: FormatPrice(s.Discount),
		Total:    FormatPrice(s.Total),
	}
}
