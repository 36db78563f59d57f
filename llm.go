package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

type LLMUsage struct {
	InputTokens              int64
	OutputTokens             int64
	CacheCreationInputTokens int64
	CacheReadInputTokens     int64
}

func (u LLMUsage) TotalTokens() int64 {
	return u.InputTokens + u.OutputTokens + u.CacheCreationInputTokens + u.CacheReadInputTokens
}

// CoachAdvice runs the breakpoint evaluator over the player's stats and
// asks the model for a prioritized improvement plan in the guide's voice.
// The deterministic evaluation is included in the prompt so the model
// explains and ranks, never re-derives thresholds.
func CoachAdvice(cfg Config, docs *GuideDocs, values map[string]float64) (string, LLMUsage, error) {
	if cfg.AnthropicAPIKey == "" {
		return "", LLMUsage{}, fmt.Errorf("anthropic_api_key is not set")
	}
	model := cfg.LLMModel
	if model == "" {
		model = defaultAnthropicModel
	}

	eval := EvaluateStats(values)
	systemPrompt := buildCoachSystemPrompt(docs)
	userPrompt := buildCoachUserPrompt(docs, values, eval)

	log.Printf("llm coach model=%s stats=%d notes=%d", model, len(values), len(eval.Notes))
	return callAnthropic(cfg.AnthropicAPIKey, model, systemPrompt, userPrompt)
}

func buildCoachSystemPrompt(docs *GuideDocs) string {
	var b strings.Builder
	b.WriteString("Du bist ein Diablo-3-Season-Coach für eine kleine deutschsprachige Gruppe von Gelegenheitsspielern.\n")
	b.WriteString("Antworte auf Deutsch, locker aber präzise, mit konkreten nächsten Schritten. Keine Theorie-Abhandlungen.\n\n")

	if docs != nil && docs.Build != nil {
		fmt.Fprintf(&b, "Aktueller Build: %s (%s).\n", docs.Build.Build.ShortName, docs.Build.Build.Class)
	}

	b.WriteString("\nStat-Breakpoints des Builds (min / gut / perfekt):\n")
	for _, stat := range TrackedStats {
		bp := stat.Breakpoint
		fmt.Fprintf(&b, "- %s: %g%s / %g%s / %g%s\n", stat.Name,
			bp.Min, bp.Unit, bp.Good, bp.Unit, bp.Perfect, bp.Unit)
	}

	if docs != nil && docs.Glossary != nil {
		b.WriteString("\nAbkürzungen:\n")
		for _, term := range glossarySample(docs.Glossary) {
			fmt.Fprintf(&b, "- %s: %s\n", term.Abbr, term.Entry.Full)
		}
	}
	return b.String()
}

// glossarySample keeps the prompt small: only the stats category, which
// covers every abbreviation the coach output uses.
func glossarySample(glossary *Glossary) []glossaryTerm {
	terms := make([]glossaryTerm, 0, len(glossary.Stats))
	for abbr, entry := range glossary.Stats {
		terms = append(terms, glossaryTerm{Abbr: abbr, Entry: entry})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Abbr < terms[j].Abbr })
	return terms
}

func buildCoachUserPrompt(docs *GuideDocs, values map[string]float64, eval StatEvaluation) string {
	var b strings.Builder
	b.WriteString("Meine aktuellen Stats:\n")
	for _, result := range eval.Results {
		fmt.Fprintf(&b, "- %s: %g%s (%s)\n", result.Stat.Name, values[result.Stat.Key], result.Stat.Breakpoint.Unit, result.Tier)
	}

	if eval.AllGood {
		b.WriteString("\nDie Auswertung hat nichts zu bemängeln.\n")
	} else {
		b.WriteString("\nAuswertung:\n")
		for _, note := range eval.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	b.WriteString("\nWas verbessere ich zuerst, und auf welchen Gear-Slots? Maximal 5 Punkte, wichtigster zuerst.\n")
	return b.String()
}

func callAnthropic(apiKey, model, systemPrompt, userPrompt string) (string, LLMUsage, error) {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	message, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		log.Printf("llm anthropic error: %v", err)
		return "", LLMUsage{}, fmt.Errorf("Anthropic API error: %w", err)
	}
	usage := LLMUsage{
		InputTokens:              message.Usage.InputTokens,
		OutputTokens:             message.Usage.OutputTokens,
		CacheCreationInputTokens: message.Usage.CacheCreationInputTokens,
		CacheReadInputTokens:     message.Usage.CacheReadInputTokens,
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm anthropic response size=%d tokens_in=%d tokens_out=%d cache_create=%d cache_read=%d", len(block.Text), usage.InputTokens, usage.OutputTokens, usage.CacheCreationInputTokens, usage.CacheReadInputTokens)
			return block.Text, usage, nil
		}
	}
	return "", usage, fmt.Errorf("no text content in Anthropic response")
}
