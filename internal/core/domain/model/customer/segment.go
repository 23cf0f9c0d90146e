package customer

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// Segment is the loyalty tier of a customer. Tiers are ordered:
//
//	Regular < Silver < Gold < Platinum
//
// The numeric values are persisted, so new tiers must be appended.
type Segment int

const (
	// Regular is the default tier for new customers.
	Regular Segment = iota
	Silver
	Gold
	Platinum
)

func getSegmentStrings() map[Segment]string {
	return map[Segment]string{
		Regular:  "Regular",
		Silver:   "Silver",
		Gold:     "Gold",
		Platinum: "Platinum",
	}
}

// Segments returns every valid tier from lowest to highest.
func Segments() []Segment {
	return []Segment{Regular, Silver, Gold, Platinum}
}

// Validate rejects values outside the known tiers.
func (s Segment) Validate() error {
	if _, ok := getSegmentStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("segment is invalid", fmt.Errorf("%d is not a valid segment", s))
	}
	return nil
}

func (s Segment) String() string {
	if str, ok := getSegmentStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseSegment resolves a tier by its name, as sent over HTTP.
func ParseSegment(name string) (Segment, error) {
	for _, segment := range Segments() {
		if segment.String() == name {
			return segment, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("segment is invalid", fmt.Errorf("%q is not a valid segment", name))
}
