package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// ParsePrice reads catalog prices such as "Rp1.499.850", "1,499,850" or
// "81k". Every non-digit is discarded, so separators of either kind are
// accepted; a trailing "k" multiplies by one thousand. It reports false when
// no digit is present.
func ParsePrice(raw string) (decimal.Decimal, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	perThousand := strings.HasSuffix(s, "k")

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	if perThousand {
		d = d.Mul(thousand)
	}
	return d, true
}
