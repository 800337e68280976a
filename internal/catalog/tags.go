package catalog

import (
	"fmt"
	"sort"
)

type TagType string

const (
	TagOutOfStock TagType = "out-of-stock"
	TagHotSale    TagType = "hot-sale"
	TagLimited    TagType = "limited"
	TagPreOrder   TagType = "pre-order"
	TagSale       TagType = "sale"
	TagNewArrival TagType = "new-arrival"
)

// TagConfig is how a tag renders on a product card. The highest Priority
// is the card's primary tag.
type TagConfig struct {
	Type      TagType `json:"type"`
	Label     string  `json:"label"`
	LabelEn   string  `json:"label_en"`
	BgColor   string  `json:"bg_color"`
	TextColor string  `json:"text_color"`
	Priority  int     `json:"priority"`
}

var tagConfigs = map[TagType]TagConfig{
	TagOutOfStock: {Type: TagOutOfStock, Label: "售完", LabelEn: "Sold Out", BgColor: "#6b7280", TextColor: "#ffffff", Priority: 100},
	TagHotSale:    {Type: TagHotSale, Label: "熱銷", LabelEn: "Hot", BgColor: "#dc2626", TextColor: "#ffffff", Priority: 90},
	TagLimited:    {Type: TagLimited, Label: "限量", LabelEn: "Limited", BgColor: "#7c3aed", TextColor: "#ffffff", Priority: 85},
	TagPreOrder:   {Type: TagPreOrder, Label: "預購", LabelEn: "Pre-order", BgColor: "#2563eb", TextColor: "#ffffff", Priority: 80},
	TagSale:       {Type: TagSale, Label: "特價", LabelEn: "Sale", BgColor: "#f59e0b", TextColor: "#111827", Priority: 75},
	TagNewArrival: {Type: TagNewArrival, Label: "新品", LabelEn: "New", BgColor: "#059669", TextColor: "#ffffff", Priority: 70},
}

// LookupTag reports the render config of t.
func LookupTag(t TagType) (TagConfig, bool) {
	c, ok := tagConfigs[t]
	return c, ok
}

func (t TagType) Valid() bool {
	_, ok := tagConfigs[t]
	return ok
}

// ProductTags returns the configs of p's tags ordered by descending priority.
// Equal priorities keep the product's own order. Unknown tags are skipped.
func ProductTags(p *Product) []TagConfig {
	if p == nil {
		return nil
	}
	out := make([]TagConfig, 0, len(p.Tags))
	for _, t := range p.Tags {
		if c, ok := tagConfigs[t]; ok {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// PrimaryTag is the single tag shown on a product card.
func PrimaryTag(p *Product) (TagConfig, bool) {
	tags := ProductTags(p)
	if len(tags) == 0 {
		return TagConfig{}, false
	}
	return tags[0], true
}

// assignTags is the fixed rotation used when generating the catalog.
// It depends only on the template position so repeated builds agree.
func assignTags(index int, inStock bool) []TagType {
	n := index + 1
	var tags []TagType
	if !inStock {
		tags = append(tags, TagOutOfStock)
	}
	if n%7 == 0 && n%5 != 0 {
		tags = append(tags, TagHotSale)
	}
	if n%9 == 0 {
		tags = append(tags, TagNewArrival)
	}
	if n%6 == 0 {
		tags = append(tags, TagLimited)
	}
	if n%13 == 0 {
		tags = append(tags, TagPreOrder)
	}
	if n%4 == 0 {
		tags = append(tags, TagSale)
	}
	return tags
}

func (t TagType) String() string {
	return string(t)
}

func parseTagType(s string) (TagType, error) {
	t := TagType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tag %q", s)
	}
	return t, nil
}
