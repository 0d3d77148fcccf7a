package service

import (
	"fmt"
	"strings"

	"github.com/greeshma-prabhu/marketing-tool/model"
)

// slotType categories map contract keys to prompt styles: title and intro
// get dedicated prompts, usp_1..usp_5 share the USP prompt, and a cta slot
// gets the call-to-action prompt.
func slotType(slotName string) string {
	switch {
	case slotName == "title":
		return "title"
	case slotName == "intro":
		return "intro"
	case slotName == "cta" || strings.HasPrefix(slotName, "cta_"):
		return "cta"
	default:
		return "usp"
	}
}

// buildSlotPrompt creates the generation prompt for one copy slot.
func buildSlotPrompt(brief *model.ProductBrief, slotName string, maxChars int) string {
	category := brief.Category
	if category == "" {
		category = "N/A"
	}

	var sb strings.Builder
	switch slotType(slotName) {
	case "title":
		sb.WriteString(fmt.Sprintf("Generate a compelling, professional title/headline for a %s onepager.\n\n", brief.Type))
		sb.WriteString(fmt.Sprintf("Product/Service: %s\n", brief.Name))
		sb.WriteString(fmt.Sprintf("Description: %s\n", brief.Description))
		sb.WriteString(fmt.Sprintf("Category: %s\n", category))
		sb.WriteString(fmt.Sprintf("Target Audience: %s\n\n", brief.TargetAudience))
		sb.WriteString("Requirements:\n")
		sb.WriteString(fmt.Sprintf("- Maximum %d characters\n", maxChars))
		sb.WriteString("- Professional, clear, and engaging\n")
		sb.WriteString(fmt.Sprintf("- Suitable for %s audience\n", brief.TargetAudience))
		sb.WriteString("- No marketing fluff or exaggerated claims\n\n")
		sb.WriteString("Generate ONLY the title text, nothing else.")
	case "intro":
		sb.WriteString(fmt.Sprintf("Generate a concise introduction paragraph for a %s onepager.\n\n", brief.Type))
		sb.WriteString(fmt.Sprintf("Product/Service: %s\n", brief.Name))
		sb.WriteString(fmt.Sprintf("Description: %s\n", brief.Description))
		sb.WriteString(fmt.Sprintf("Category: %s\n", category))
		sb.WriteString(fmt.Sprintf("Target Audience: %s\n\n", brief.TargetAudience))
		sb.WriteString("Requirements:\n")
		sb.WriteString(fmt.Sprintf("- Maximum %d characters\n", maxChars))
		sb.WriteString("- Professional tone\n")
		sb.WriteString("- Clear value proposition\n")
		sb.WriteString(fmt.Sprintf("- Suitable for %s audience\n\n", brief.TargetAudience))
		sb.WriteString("Generate ONLY the introduction text, nothing else.")
	case "cta":
		sb.WriteString(fmt.Sprintf("Generate a call-to-action button text for a %s onepager.\n\n", brief.Type))
		sb.WriteString(fmt.Sprintf("Product/Service: %s\n", brief.Name))
		sb.WriteString(fmt.Sprintf("Target Audience: %s\n\n", brief.TargetAudience))
		sb.WriteString("Requirements:\n")
		sb.WriteString(fmt.Sprintf("- Maximum %d characters\n", maxChars))
		sb.WriteString("- Action-oriented (e.g., \"Start Free Trial\", \"Request Demo\", \"Learn More\")\n")
		sb.WriteString("- Professional tone\n\n")
		sb.WriteString("Generate ONLY the CTA text, nothing else.")
	default:
		features := "N/A"
		if len(brief.Features) > 0 {
			features = strings.Join(brief.Features, ", ")
		}
		sb.WriteString(fmt.Sprintf("Generate a compelling unique selling point (USP) for a %s onepager.\n\n", brief.Type))
		sb.WriteString(fmt.Sprintf("Product/Service: %s\n", brief.Name))
		sb.WriteString(fmt.Sprintf("Description: %s\n", brief.Description))
		sb.WriteString(fmt.Sprintf("Features: %s\n", features))
		sb.WriteString(fmt.Sprintf("Target Audience: %s\n\n", brief.TargetAudience))
		sb.WriteString("Requirements:\n")
		sb.WriteString(fmt.Sprintf("- Maximum %d characters\n", maxChars))
		sb.WriteString("- Focus on ONE key benefit or feature\n")
		sb.WriteString("- Clear and specific\n")
		sb.WriteString("- Professional tone\n\n")
		sb.WriteString("Generate ONLY the USP text, nothing else.")
	}

	return sb.String()
}

// languageDirective maps a language code to the instruction embedded in the
// variant prompt. Unlisted codes default to English.
func languageDirective(language string) string {
	switch language {
	case "zh", "zh-CN":
		return "IMPORTANT: Generate all content in Simplified Chinese (简体中文)."
	case "nl":
		return "IMPORTANT: Generate all content in Dutch (Nederlands)."
	default:
		return "IMPORTANT: Generate all content in English."
	}
}

// buildVariantPrompt creates the combined prompt asking for three tonal
// headline/tagline pairs as JSON.
func buildVariantPrompt(productName, description, audience, language string) string {
	description = truncateChars(description, 300)

	var sb strings.Builder
	sb.WriteString("Generate 3 COMPLETELY DIFFERENT headlines and taglines for a product onepager.\n")
	sb.WriteString(languageDirective(language))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Product Name: %s\n", productName))
	sb.WriteString(fmt.Sprintf("Description: %s\n", description))
	sb.WriteString(fmt.Sprintf("Target Audience: %s\n", audience))
	sb.WriteString(fmt.Sprintf("Language: %s\n\n", language))
	sb.WriteString("Requirements:\n")
	sb.WriteString("1. Variant A - Professional/Business Tone: headline focused on excellence, quality, reliability; corporate, results-oriented tagline.\n")
	sb.WriteString("2. Variant B - Emotional/Transformational Tone: headline focused on transformation, experience, lifestyle; inspiring, aspirational tagline.\n")
	sb.WriteString("3. Variant C - Technical/Innovation Tone: headline focused on technology, innovation, advanced features; cutting-edge, forward-thinking tagline.\n\n")
	sb.WriteString("CRITICAL: Each variant must be COMPLETELY DIFFERENT in wording, tone, and focus.\n\n")
	sb.WriteString("Return ONLY valid JSON in this exact shape:\n")
	sb.WriteString(`{"variants": [` + "\n")
	sb.WriteString(`  {"headline": "Variant A headline (max 60 chars)", "tagline": "Variant A tagline (max 40 chars)", "tone": "professional"},` + "\n")
	sb.WriteString(`  {"headline": "Variant B headline (max 60 chars)", "tagline": "Variant B tagline (max 40 chars)", "tone": "emotional"},` + "\n")
	sb.WriteString(`  {"headline": "Variant C headline (max 60 chars)", "tagline": "Variant C tagline (max 40 chars)", "tone": "technical"}` + "\n")
	sb.WriteString("]}\n\n")
	sb.WriteString("Return ONLY the JSON, no other text.")

	return sb.String()
}
