package gamma

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Event is the Gamma API's top-level record. One event groups one or more
// market sub-objects, each representing a single outcome side.
type Event struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ResolutionSource string    `json:"resolutionSource"`
	EndDate          string    `json:"endDate"`
	CreatedAt        string    `json:"createdAt"`
	Image            string    `json:"image"`
	Active           bool      `json:"active"`
	Closed           bool      `json:"closed"`
	Volume           FlexFloat `json:"volume"`
	Volume24hr       FlexFloat `json:"volume24hr"`
	Liquidity        FlexFloat `json:"liquidity"`
	Tags             []Tag     `json:"tags"`
	Markets          []Market  `json:"markets"`
}

// Market is one outcome sub-object nested in an event. The API renders
// outcomePrices and clobTokenIds either as native arrays or as JSON
// documents encoded inside a string; the list types absorb both forms.
type Market struct {
	ID             string     `json:"id"`
	Question       string     `json:"question"`
	GroupItemTitle string     `json:"groupItemTitle"`
	OutcomePrices  FloatList  `json:"outcomePrices"`
	ClobTokenIDs   StringList `json:"clobTokenIds"`
	Volume         FlexFloat  `json:"volume"`
}

// Tag is a category-like label attached to an event. Upstream emits either
// a structured object or a bare string; bare tags are normalized so the
// text serves as both label and slug, with no id.
type Tag struct {
	ID         string
	Label      string
	Slug       string
	EventCount int
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Tag{Label: s, Slug: s}
		return nil
	}

	var aux struct {
		ID         FlexString `json:"id"`
		Label      string     `json:"label"`
		Slug       string     `json:"slug"`
		EventCount int        `json:"eventCount"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.ID = string(aux.ID)
	t.Label = aux.Label
	t.Slug = aux.Slug
	t.EventCount = aux.EventCount
	return nil
}

// FlexString accepts a JSON string or number and keeps its text form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// FlexFloat accepts a JSON number or a numeric string. Anything else
// decodes as zero; a malformed figure must not fail the enclosing event.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*f = FlexFloat(v)
	}
	return nil
}

// FloatList decodes a field that is a native numeric array, an array of
// numeric strings, or either of those encoded inside a JSON string.
// Malformed input decodes as nil rather than failing the event.
type FloatList []float64

func (f *FloatList) UnmarshalJSON(data []byte) error {
	*f = nil

	// String form is a degenerate encoding of the same document.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		data = []byte(s)
	}

	var nums []float64
	if err := json.Unmarshal(data, &nums); err == nil {
		*f = nums
		return nil
	}

	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return nil
	}
	out := make([]float64, 0, len(strs))
	for _, v := range strs {
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	*f = out
	return nil
}

// StringList decodes a native string array or the same array encoded
// inside a JSON string. Malformed input decodes as nil.
type StringList []string

func (f *StringList) UnmarshalJSON(data []byte) error {
	*f = nil

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		data = []byte(s)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	*f = items
	return nil
}
