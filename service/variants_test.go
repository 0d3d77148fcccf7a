package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

const variantJSON = `{"variants": [
  {"headline": "Precision Engineering for Modern Teams", "tagline": "Quality you can measure", "tone": "professional"},
  {"headline": "Fall in Love with Your Workflow", "tagline": "Feel the difference every day", "tone": "emotional"},
  {"headline": "Next-Gen Architecture, Zero Compromise", "tagline": "Built on cutting-edge technology", "tone": "technical"}
]}`

func TestVariantGeneratorParsesBackendResponse(t *testing.T) {
	llm := &fakeLLM{
		respond: func(prompt string) (string, error) {
			return variantJSON, nil
		},
	}
	gen := NewVariantGenerator(llm)

	variants := gen.Generate(context.Background(), "UltraWidget", "A widget", "B2B", "en", nil)

	if len(variants) != 3 {
		t.Fatalf("Expected 3 variants, got %d", len(variants))
	}
	if variants[0].Headline != "Precision Engineering for Modern Teams" {
		t.Errorf("Unexpected professional headline: %s", variants[0].Headline)
	}
	if variants[1].Tagline != "Feel the difference every day" {
		t.Errorf("Unexpected emotional tagline: %s", variants[1].Tagline)
	}
	if variants[2].Tone != model.ToneTechnical {
		t.Errorf("Expected technical tone third, got %s", variants[2].Tone)
	}
}

func TestVariantGeneratorFixedOrderAndPresentation(t *testing.T) {
	// Backend returns tones out of order; output order must not change
	shuffled := `{"variants": [
  {"headline": "T", "tagline": "t", "tone": "technical"},
  {"headline": "P", "tagline": "p", "tone": "professional"},
  {"headline": "E", "tagline": "e", "tone": "emotional"}
]}`
	llm := &fakeLLM{
		respond: func(prompt string) (string, error) {
			return shuffled, nil
		},
	}
	gen := NewVariantGenerator(llm)

	variants := gen.Generate(context.Background(), "UltraWidget", "A widget", "BOTH", "en", nil)

	expected := []struct {
		id       string
		tone     string
		accent   string
		emphasis string
	}{
		{"variant-A", model.ToneProfessional, "#4F46E5", "features"},
		{"variant-B", model.ToneEmotional, "#10B981", "benefits"},
		{"variant-C", model.ToneTechnical, "#8B5CF6", "specs"},
	}
	for i, want := range expected {
		if variants[i].ID != want.id {
			t.Errorf("Variant %d: expected id %s, got %s", i, want.id, variants[i].ID)
		}
		if variants[i].Tone != want.tone {
			t.Errorf("Variant %d: expected tone %s, got %s", i, want.tone, variants[i].Tone)
		}
		if variants[i].AccentColor != want.accent {
			t.Errorf("Variant %d: expected accent %s, got %s", i, want.accent, variants[i].AccentColor)
		}
		if variants[i].LayoutEmphasis != want.emphasis {
			t.Errorf("Variant %d: expected emphasis %s, got %s", i, want.emphasis, variants[i].LayoutEmphasis)
		}
	}
	if variants[0].Headline != "P" || variants[1].Headline != "E" || variants[2].Headline != "T" {
		t.Error("Expected seeds re-keyed by tone, not positional")
	}
}

func TestVariantGeneratorFallbackOnBackendError(t *testing.T) {
	llm := &fakeLLM{
		respond: func(prompt string) (string, error) {
			return "", errors.New("backend down")
		},
	}
	gen := NewVariantGenerator(llm)

	variants := gen.Generate(context.Background(), "UltraWidget", "A widget", "B2C", "en", nil)

	if len(variants) != 3 {
		t.Fatalf("Expected 3 fallback variants, got %d", len(variants))
	}
	if variants[0].Headline != "UltraWidget: Professional Excellence" {
		t.Errorf("Unexpected professional fallback: %s", variants[0].Headline)
	}
	if variants[1].Headline != "Transform Your World with UltraWidget" {
		t.Errorf("Unexpected emotional fallback: %s", variants[1].Headline)
	}
	if variants[2].Headline != "UltraWidget: Advanced Innovation Technology" {
		t.Errorf("Unexpected technical fallback: %s", variants[2].Headline)
	}
}

func TestVariantGeneratorFallbackFillsMissingTone(t *testing.T) {
	// Backend only answered for two tones
	partial := `{"variants": [
  {"headline": "P", "tagline": "p", "tone": "professional"},
  {"headline": "T", "tagline": "t", "tone": "technical"}
]}`
	llm := &fakeLLM{
		respond: func(prompt string) (string, error) {
			return partial, nil
		},
	}
	gen := NewVariantGenerator(llm)

	variants := gen.Generate(context.Background(), "UltraWidget", "A widget", "B2B", "en", nil)

	if variants[0].Headline != "P" {
		t.Errorf("Expected backend professional seed, got %s", variants[0].Headline)
	}
	if variants[1].Headline != "Transform Your World with UltraWidget" {
		t.Errorf("Expected emotional fallback, got %s", variants[1].Headline)
	}
	if variants[2].Headline != "T" {
		t.Errorf("Expected backend technical seed, got %s", variants[2].Headline)
	}
}

func TestParseVariantResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain JSON", variantJSON, false},
		{"fenced JSON", "```json\n" + variantJSON + "\n```", false},
		{"prose around JSON", "Here you go:\n" + variantJSON + "\nHope that helps!", false},
		{"no JSON", "sorry, I cannot do that", true},
		{"malformed JSON", `{"variants": [}`, true},
		{"empty variants", `{"variants": []}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseVariantResponse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(parsed.Variants) != 3 {
				t.Errorf("Expected 3 seeds, got %d", len(parsed.Variants))
			}
		})
	}
}

func TestReorderFeatures(t *testing.T) {
	features := []string{"Fast performance", "Beautiful style", "Low price"}

	tests := []struct {
		name     string
		tone     string
		expected []string
	}{
		{
			name:     "technical moves performance first",
			tone:     model.ToneTechnical,
			expected: []string{"Fast performance", "Beautiful style", "Low price"},
		},
		{
			name:     "emotional moves style first",
			tone:     model.ToneEmotional,
			expected: []string{"Beautiful style", "Fast performance", "Low price"},
		},
		{
			name:     "professional keeps input order",
			tone:     model.ToneProfessional,
			expected: []string{"Fast performance", "Beautiful style", "Low price"},
		},
		{
			name:     "unknown tone keeps input order",
			tone:     "sarcastic",
			expected: []string{"Fast performance", "Beautiful style", "Low price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReorderFeatures(features, tt.tone)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReorderFeaturesShortLists(t *testing.T) {
	single := []string{"Fast performance"}
	if got := ReorderFeatures(single, model.ToneTechnical); !reflect.DeepEqual(got, single) {
		t.Errorf("Single-element list must pass through, got %v", got)
	}
	if got := ReorderFeatures(nil, model.ToneEmotional); got != nil {
		t.Errorf("Nil list must pass through, got %v", got)
	}
}

func TestReorderFeaturesStablePartitions(t *testing.T) {
	features := []string{"Plain one", "Advanced engine", "Plain two", "High speed mode"}

	got := ReorderFeatures(features, model.ToneTechnical)
	expected := []string{"Advanced engine", "High speed mode", "Plain one", "Plain two"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected stable partition %v, got %v", expected, got)
	}
}
