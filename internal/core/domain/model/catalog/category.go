package catalog

import (
	"fmt"
	"strings"

	"aims/internal/pkg/errs"
)

// Category is the kind of physical media a product is.
type Category string

const (
	Book Category = "BOOK"
	CD   Category = "CD"
	LP   Category = "LP"
	DVD  Category = "DVD"
)

// ParseCategory accepts any letter case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate rejects anything other than BOOK, CD, LP or DVD.
func (c Category) Validate() error {
	switch c {
	case Book, CD, LP, DVD:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a known category", string(c)))
	}
}

func (c Category) String() string {
	return string(c)
}
