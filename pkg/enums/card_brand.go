package enums

// CardBrand is the provider-reported card network. Purely cosmetic; anything
// the provider does not recognize collapses to CardBrandUnknown.
type CardBrand string

const (
	CardBrandVisa       CardBrand = "visa"
	CardBrandMastercard CardBrand = "mastercard"
	CardBrandAmex       CardBrand = "amex"
	CardBrandDiscover   CardBrand = "discover"
	CardBrandUnknown    CardBrand = "unknown"
)

var knownCardBrands = []CardBrand{
	CardBrandVisa,
	CardBrandMastercard,
	CardBrandAmex,
	CardBrandDiscover,
}

// String implements fmt.Stringer.
func (c CardBrand) String() string {
	return string(c)
}

// NormalizeCardBrand maps provider metadata onto a known brand, falling back
// to CardBrandUnknown instead of failing.
func NormalizeCardBrand(value string) CardBrand {
	for _, candidate := range knownCardBrands {
		if string(candidate) == value {
			return candidate
		}
	}
	return CardBrandUnknown
}
