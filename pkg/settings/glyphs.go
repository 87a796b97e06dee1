package settings

// GlyphType names one entry of the glyph table.
type GlyphType string

const (
	GlyphSpacer            GlyphType = "spacer"
	GlyphLastSpacer        GlyphType = "lastSpacer"
	GlyphNodeExpanded      GlyphType = "nodeExpanded"
	GlyphLastNodeExpanded  GlyphType = "lastNodeExpanded"
	GlyphNodeCollapsed     GlyphType = "nodeCollapsed"
	GlyphLastNodeCollapsed GlyphType = "lastNodeCollapsed"
	GlyphLeaf              GlyphType = "leaf"
	GlyphLastLeaf          GlyphType = "lastLeaf"
)

// GlyphTypes lists every glyph type in table order.
var GlyphTypes = []GlyphType{
	GlyphSpacer,
	GlyphLastSpacer,
	GlyphNodeExpanded,
	GlyphLastNodeExpanded,
	GlyphNodeCollapsed,
	GlyphLastNodeCollapsed,
	GlyphLeaf,
	GlyphLastLeaf,
}

// Glyphs is the table of connector and affordance glyphs used to draw the tree
// column. Spacers are drawn once per ancestor, the node glyph once per row.
type Glyphs struct {
	Spacer            string `yaml:"spacer" json:"spacer"`
	LastSpacer        string `yaml:"lastSpacer" json:"lastSpacer"`
	NodeExpanded      string `yaml:"nodeExpanded" json:"nodeExpanded"`
	LastNodeExpanded  string `yaml:"lastNodeExpanded" json:"lastNodeExpanded"`
	NodeCollapsed     string `yaml:"nodeCollapsed" json:"nodeCollapsed"`
	LastNodeCollapsed string `yaml:"lastNodeCollapsed" json:"lastNodeCollapsed"`
	Leaf              string `yaml:"leaf" json:"leaf"`
	LastLeaf          string `yaml:"lastLeaf" json:"lastLeaf"`
}

// For returns the glyph for t, or "" for an unknown type.
func (g Glyphs) For(t GlyphType) string {
	switch t {
	case GlyphSpacer:
		return g.Spacer
	case GlyphLastSpacer:
		return g.LastSpacer
	case GlyphNodeExpanded:
		return g.NodeExpanded
	case GlyphLastNodeExpanded:
		return g.LastNodeExpanded
	case GlyphNodeCollapsed:
		return g.NodeCollapsed
	case GlyphLastNodeCollapsed:
		return g.LastNodeCollapsed
	case GlyphLeaf:
		return g.Leaf
	case GlyphLastLeaf:
		return g.LastLeaf
	default:
		return ""
	}
}

// Missing returns the glyph types that have no glyph configured.
func (g Glyphs) Missing() []GlyphType {
	var missing []GlyphType
	for _, t := range GlyphTypes {
		if g.For(t) == "" {
			missing = append(missing, t)
		}
	}
	return missing
}
