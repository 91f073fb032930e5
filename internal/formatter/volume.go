package formatter

import "github.com/shopspring/decimal"

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// Volume renders a raw trade volume as a compact magnitude string:
// 2500000 -> "2.5M", 1500 -> "1.5K", 999 -> "999". Values below one
// thousand are truncated to whole units, no separators.
func Volume(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case v >= 1_000_000:
		return d.Div(million).StringFixed(1) + "M"
	case v >= 1_000:
		return d.Div(thousand).StringFixed(1) + "K"
	default:
		return d.Truncate(0).String()
	}
}
