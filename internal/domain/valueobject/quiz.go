package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PropertyType – immutable value object
// ---------------------------------------------------------------------------

// PropertyType is the kind of home the buyer is shopping for.
type PropertyType struct {
	value string
}

const (
	propertyTypeCondo     = "CONDO"
	propertyTypeTownhouse = "TOWNHOUSE"
	propertyTypeDetached  = "DETACHED"
	propertyTypePresale   = "PRESALE"
)

var (
	PropertyTypeCondo     = PropertyType{value: propertyTypeCondo}
	PropertyTypeTownhouse = PropertyType{value: propertyTypeTownhouse}
	PropertyTypeDetached  = PropertyType{value: propertyTypeDetached}
	PropertyTypePresale   = PropertyType{value: propertyTypePresale}
)

var validPropertyTypes = map[string]PropertyType{
	propertyTypeCondo:     PropertyTypeCondo,
	propertyTypeTownhouse: PropertyTypeTownhouse,
	propertyTypeDetached:  PropertyTypeDetached,
	propertyTypePresale:   PropertyTypePresale,
}

// NewPropertyType creates a PropertyType from a raw string.
func NewPropertyType(s string) (PropertyType, error) {
	v, ok := validPropertyTypes[s]
	if !ok {
		return PropertyType{}, fmt.Errorf("invalid property type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (p PropertyType) String() string { return p.value }

// IsZero returns true when not initialised.
func (p PropertyType) IsZero() bool { return p.value == "" }

// IsNewConstruction reports whether the property type qualifies for
// new-construction incentives (GST rebate, newly-built PTT exemption).
func (p PropertyType) IsNewConstruction() bool { return p.value == propertyTypePresale }

// ---------------------------------------------------------------------------
// Timeline – immutable value object
// ---------------------------------------------------------------------------

// Timeline is the buyer's purchase horizon from the questionnaire.
type Timeline struct {
	value string
}

const (
	timelineNow        = "NOW"
	timelineSixMonths  = "SIX_MONTHS"
	timelineOneYear    = "ONE_YEAR"
	timelineExploring  = "EXPLORING"
)

var (
	TimelineNow       = Timeline{value: timelineNow}
	TimelineSixMonths = Timeline{value: timelineSixMonths}
	TimelineOneYear   = Timeline{value: timelineOneYear}
	TimelineExploring = Timeline{value: timelineExploring}
)

var validTimelines = map[string]Timeline{
	timelineNow:       TimelineNow,
	timelineSixMonths: TimelineSixMonths,
	timelineOneYear:   TimelineOneYear,
	timelineExploring: TimelineExploring,
}

// NewTimeline creates a Timeline from a raw string.
func NewTimeline(s string) (Timeline, error) {
	v, ok := validTimelines[s]
	if !ok {
		return Timeline{}, fmt.Errorf("invalid timeline: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (t Timeline) String() string { return t.value }

// IsZero returns true when not initialised.
func (t Timeline) IsZero() bool { return t.value == "" }
