package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/greeshma-prabhu/marketing-tool/model"
	"github.com/greeshma-prabhu/marketing-tool/pkg/logger"
)

// variantTones is the fixed output order, regardless of backend order.
var variantTones = []string{model.ToneProfessional, model.ToneEmotional, model.ToneTechnical}

var variantAccents = map[string]string{
	model.ToneProfessional: "#4F46E5",
	model.ToneEmotional:    "#10B981",
	model.ToneTechnical:    "#8B5CF6",
}

var variantEmphasis = map[string]string{
	model.ToneProfessional: "features",
	model.ToneEmotional:    "benefits",
	model.ToneTechnical:    "specs",
}

var emotionalKeywords = []string{"experience", "feel", "enjoy", "love", "comfort", "style", "beautiful"}
var technicalKeywords = []string{"spec", "performance", "technology", "advanced", "power", "speed", "capacity"}

// VariantGenerator produces three tonal headline/tagline renditions of a
// product in one combined backend call, with a deterministic fallback.
type VariantGenerator struct {
	llm LLMClient
}

func NewVariantGenerator(llm LLMClient) *VariantGenerator {
	return &VariantGenerator{llm: llm}
}

type variantSeed struct {
	Headline string `json:"headline"`
	Tagline  string `json:"tagline"`
	Tone     string `json:"tone"`
}

type variantResponse struct {
	Variants []variantSeed `json:"variants"`
}

// Generate returns exactly three variants in professional, emotional,
// technical order. Backend or parse failures never propagate; affected
// tones fall back to fixed phrasings built from the product name.
func (g *VariantGenerator) Generate(ctx context.Context, productName, description, audience, language string, features []string) []model.Variant {
	seeds := g.generateSeeds(ctx, productName, description, audience, language)

	variantIDs := []string{"variant-A", "variant-B", "variant-C"}
	variants := make([]model.Variant, 0, len(variantTones))
	for i, tone := range variantTones {
		seed, ok := seeds[tone]
		if !ok || seed.Headline == "" {
			seed = fallbackSeed(productName, tone)
		}
		variants = append(variants, model.Variant{
			ID:             variantIDs[i],
			Headline:       seed.Headline,
			Tagline:        seed.Tagline,
			Tone:           tone,
			AccentColor:    variantAccents[tone],
			Features:       ReorderFeatures(features, tone),
			LayoutEmphasis: variantEmphasis[tone],
		})
	}

	return variants
}

// generateSeeds asks the backend for the three seeds and keys them by tone.
// Any failure returns an empty map so every tone falls back.
func (g *VariantGenerator) generateSeeds(ctx context.Context, productName, description, audience, language string) map[string]variantSeed {
	seeds := make(map[string]variantSeed)

	prompt := buildVariantPrompt(productName, description, audience, language)
	raw, err := g.llm.Complete(ctx, prompt)
	if err != nil {
		logger.Warn(ctx, "variant generation failed, using fallback", "error", err)
		return seeds
	}

	parsed, err := parseVariantResponse(raw)
	if err != nil {
		logger.Warn(ctx, "variant response unparseable, using fallback", "error", err)
		return seeds
	}

	for _, seed := range parsed.Variants {
		tone := strings.ToLower(strings.TrimSpace(seed.Tone))
		if _, known := variantAccents[tone]; !known {
			continue
		}
		if _, dup := seeds[tone]; dup {
			continue
		}
		seed.Tone = tone
		seeds[tone] = seed
	}

	return seeds
}

// parseVariantResponse decodes the model output strictly. Markdown code
// fences are stripped and the outermost brace span is located by the first
// and last brace, which tolerates prose around the object and is safe for
// nested braces.
func parseVariantResponse(raw string) (*variantResponse, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed variantResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode variants: %w", err)
	}
	if len(parsed.Variants) == 0 {
		return nil, fmt.Errorf("response contains no variants")
	}

	return &parsed, nil
}

// fallbackSeed is the deterministic substitute used whenever the backend
// cannot supply a usable seed for a tone.
func fallbackSeed(productName, tone string) variantSeed {
	switch tone {
	case model.ToneEmotional:
		return variantSeed{
			Headline: fmt.Sprintf("Transform Your World with %s", productName),
			Tagline:  "Experience the difference that matters",
			Tone:     tone,
		}
	case model.ToneTechnical:
		return variantSeed{
			Headline: fmt.Sprintf("%s: Advanced Innovation Technology", productName),
			Tagline:  "Cutting-edge solutions for modern challenges",
			Tone:     tone,
		}
	default:
		return variantSeed{
			Headline: fmt.Sprintf("%s: Professional Excellence", productName),
			Tagline:  "Delivering superior quality and reliability",
			Tone:     model.ToneProfessional,
		}
	}
}

// ReorderFeatures reorders a feature list to match a tone's emphasis.
// Professional keeps the input order. Emotional and technical move
// keyword-matching features to the front, preserving relative order within
// each partition. Unknown tones and lists shorter than 2 pass through.
func ReorderFeatures(features []string, tone string) []string {
	if len(features) < 2 {
		return features
	}

	var keywords []string
	switch tone {
	case model.ToneEmotional:
		keywords = emotionalKeywords
	case model.ToneTechnical:
		keywords = technicalKeywords
	default:
		return features
	}

	var matched, other []string
	for _, feature := range features {
		lower := strings.ToLower(feature)
		isMatch := false
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				isMatch = true
				break
			}
		}
		if isMatch {
			matched = append(matched, feature)
		} else {
			other = append(other, feature)
		}
	}

	return append(matched, other...)
}
