package fsutil

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalOrder compares strings the way a person sorts file names: digit
// runs compare by numeric value and differences in case, accents and width
// are ignored ("file2" < "file10", "Alpha" == "alpha").
//
// A NaturalOrder is not safe for concurrent use.
type NaturalOrder struct {
	c *collate.Collator
}

// NewNaturalOrder returns a root-locale collator with numeric ordering and
// base strength.
func NewNaturalOrder() *NaturalOrder {
	return &NaturalOrder{
		c: collate.New(language.Und, collate.Numeric, collate.Loose),
	}
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b.
func (o *NaturalOrder) Compare(a, b string) int {
	return o.c.CompareString(a, b)
}
