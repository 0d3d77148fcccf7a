package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/greeshma-prabhu/marketing-tool/config"
	"github.com/greeshma-prabhu/marketing-tool/model"
)

// requiredSlots must be non-empty whenever the contract includes them.
var requiredSlots = []string{"title", "intro"}

// QCEngine evaluates generated copy against a slot contract. Evaluation is
// a pure function of its inputs: no side effects, total over any record.
type QCEngine struct {
	nearLimitRatio float64
	minIntroChars  int
}

func NewQCEngine(cfg *config.QCConfig) *QCEngine {
	nearLimitRatio := cfg.NearLimitRatio
	if nearLimitRatio <= 0 {
		nearLimitRatio = 0.9
	}
	minIntroChars := cfg.MinIntroChars
	if minIntroChars <= 0 {
		minIntroChars = 50
	}
	return &QCEngine{
		nearLimitRatio: nearLimitRatio,
		minIntroChars:  minIntroChars,
	}
}

// Evaluate runs all checks in rule order and aggregates the verdict:
// fail if any check failed, else warning if any warned, else pass.
func (e *QCEngine) Evaluate(contract model.SlotContract, slots *model.CopySlots) model.QCResult {
	var checks []model.QCCheck

	// Check 1: text overflow against slot character limits
	for _, slotName := range copySlotOrder {
		maxChars, ok := contract[slotName]
		if !ok {
			continue
		}
		value := slots.Slot(slotName)
		if value == "" {
			continue
		}
		length := utf8.RuneCountInString(value)
		if length > maxChars {
			checks = append(checks, model.QCCheck{
				CheckName: fmt.Sprintf("text_overflow_%s", slotName),
				Status:    model.QCFail,
				Message:   fmt.Sprintf("%s exceeds limit: %d/%d chars", slotName, length, maxChars),
				Severity:  model.SeverityHigh,
			})
		} else if float64(length) > float64(maxChars)*e.nearLimitRatio {
			checks = append(checks, model.QCCheck{
				CheckName: fmt.Sprintf("text_near_limit_%s", slotName),
				Status:    model.QCWarning,
				Message:   fmt.Sprintf("%s near limit: %d/%d chars", slotName, length, maxChars),
				Severity:  model.SeverityMedium,
			})
		}
	}

	// Check 2: required slots filled
	for _, slotName := range requiredSlots {
		if _, ok := contract[slotName]; !ok {
			continue
		}
		if strings.TrimSpace(slots.Slot(slotName)) == "" {
			checks = append(checks, model.QCCheck{
				CheckName: fmt.Sprintf("missing_required_%s", slotName),
				Status:    model.QCFail,
				Message:   fmt.Sprintf("Required slot '%s' is empty", slotName),
				Severity:  model.SeverityHigh,
			})
		}
	}

	// Check 3: minimum intro length
	if _, ok := contract["intro"]; ok && slots.Intro != "" {
		trimmed := utf8.RuneCountInString(strings.TrimSpace(slots.Intro))
		if trimmed < e.minIntroChars {
			checks = append(checks, model.QCCheck{
				CheckName: "intro_too_short",
				Status:    model.QCWarning,
				Message:   fmt.Sprintf("Introduction is very short: %d chars", utf8.RuneCountInString(slots.Intro)),
				Severity:  model.SeverityLow,
			})
		}
	}

	overall := model.QCPass
	for _, check := range checks {
		if check.Status == model.QCFail {
			overall = model.QCFail
			break
		}
		if check.Status == model.QCWarning {
			overall = model.QCWarning
		}
	}

	return model.QCResult{
		OverallStatus: overall,
		Checks:        checks,
		FixesApplied:  []string{},
	}
}
