package kernel

import (
	"strings"
	"unicode"

	"aims/internal/pkg/errs"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrProvinceIsRequired is returned for blank province names.
var ErrProvinceIsRequired = errs.NewValueIsRequiredError("province")

// Province is a delivery province as typed by the shopper.
//
// Comparison goes through a folded key: case, whitespace, punctuation and
// Vietnamese diacritics are ignored, and the common spellings of the two
// primary metros resolve to one canonical province. Every fee and eligibility
// rule compares provinces through Is, so "Hà Nội", "ha noi" and "Hanoi" are
// treated identically everywhere.
type Province struct {
	name string
	key  string
}

var (
	// Hanoi is the primary metro that is also eligible for rush delivery.
	Hanoi = mustProvince("Hanoi")
	// HoChiMinhCity is the second primary metro.
	HoChiMinhCity = mustProvince("Ho Chi Minh City")
)

var provinceAliases = map[string]string{
	"hanoi":             "hanoi",
	"tphanoi":           "hanoi",
	"thanhphohanoi":     "hanoi",
	"hn":                "hanoi",
	"hochiminh":         "hochiminhcity",
	"hochiminhcity":     "hochiminhcity",
	"tphochiminh":       "hochiminhcity",
	"thanhphohochiminh": "hochiminhcity",
	"tphcm":             "hochiminhcity",
	"hcm":               "hochiminhcity",
	"hcmc":              "hochiminhcity",
	"saigon":            "hochiminhcity",
}

var canonicalProvinceNames = map[string]string{
	"hanoi":         "Hanoi",
	"hochiminhcity": "Ho Chi Minh City",
}

// NewProvince builds a Province from free text.
func NewProvince(name string) (Province, error) {
	trimmed := strings.TrimSpace(name)
	key := foldProvince(trimmed)
	if key == "" {
		return Province{}, ErrProvinceIsRequired
	}

	if canonical, ok := provinceAliases[key]; ok {
		return Province{name: canonicalProvinceNames[canonical], key: canonical}, nil
	}
	return Province{name: trimmed, key: key}, nil
}

func mustProvince(name string) Province {
	p, err := NewProvince(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the canonical name for known metros and the trimmed input otherwise.
func (p Province) Name() string {
	return p.name
}

// Key returns the folded comparison key.
func (p Province) Key() string {
	return p.key
}

// Is reports whether two provinces denote the same place.
func (p Province) Is(other Province) bool {
	return p.key != "" && p.key == other.key
}

// In reports whether p matches any of the given provinces.
func (p Province) In(set []Province) bool {
	for _, candidate := range set {
		if p.Is(candidate) {
			return true
		}
	}
	return false
}

// IsZero reports whether the province is unset.
func (p Province) IsZero() bool {
	return p.key == ""
}

func (p Province) String() string {
	return p.name
}

func foldProvince(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.NewReplacer("đ", "d", "Đ", "d").Replace(folded)

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
