package model

// Variant tones, always emitted in this order
const (
	ToneProfessional = "professional"
	ToneEmotional    = "emotional"
	ToneTechnical    = "technical"
)

// Variant is one tonal rendition of headline and tagline for a product,
// with features reordered to match the tone's emphasis.
type Variant struct {
	ID             string   `json:"id"`
	Headline       string   `json:"headline"`
	Tagline        string   `json:"tagline"`
	Tone           string   `json:"tone"`
	AccentColor    string   `json:"accent_color"`
	Features       []string `json:"features"`
	LayoutEmphasis string   `json:"layout_emphasis"`
}
