package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/greeshma-prabhu/marketing-tool/model"
	"github.com/greeshma-prabhu/marketing-tool/pkg/logger"
)

// copySlotOrder is the fixed set of slots a copy record can hold, in the
// order tasks are built. Contract keys outside this set are ignored.
var copySlotOrder = []string{"title", "intro", "usp_1", "usp_2", "usp_3", "usp_4", "usp_5"}

// Copywriter generates copy for all contract slots by fanning out one
// backend call per slot.
type Copywriter struct {
	llm         LLMClient
	concurrency int
}

func NewCopywriter(llm LLMClient, concurrency int) *Copywriter {
	if concurrency <= 0 {
		concurrency = 6
	}
	return &Copywriter{
		llm:         llm,
		concurrency: concurrency,
	}
}

type slotTask struct {
	name     string
	maxChars int
}

// Generate fills every contract slot concurrently. A failed or degenerate
// backend call resolves that slot to an empty string; Generate itself never
// fails. Each result is truncated to its slot limit before being folded in,
// so the returned record always satisfies the contract bounds.
func (w *Copywriter) Generate(ctx context.Context, brief *model.ProductBrief, contract model.SlotContract) model.CopySlots {
	var tasks []slotTask
	for _, name := range copySlotOrder {
		if maxChars, ok := contract[name]; ok {
			tasks = append(tasks, slotTask{name: name, maxChars: maxChars})
		}
	}

	start := time.Now()
	results := make([]string, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for i, task := range tasks {
		g.Go(func() error {
			text, err := w.generateSlot(gctx, brief, task)
			if err != nil {
				// Absorb the failure; QC reports the empty slot later.
				logger.Warn(gctx, "slot generation failed",
					"slot", task.name,
					"error", err,
				)
				return nil
			}
			results[i] = text
			return nil
		})
	}

	// Tasks never return errors, so this only waits for completion.
	_ = g.Wait()

	var slots model.CopySlots
	for i, task := range tasks {
		slots.SetSlot(task.name, results[i])
	}

	logger.Debug(ctx, "copy generation completed",
		"slots", len(tasks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return slots
}

func (w *Copywriter) generateSlot(ctx context.Context, brief *model.ProductBrief, task slotTask) (string, error) {
	prompt := buildSlotPrompt(brief, task.name, task.maxChars)

	text, err := w.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return truncateChars(strings.TrimSpace(text), task.maxChars), nil
}

// truncateChars cuts a string to at most max characters (runes, so
// multi-byte languages are not cut mid-character).
func truncateChars(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
