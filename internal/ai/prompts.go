package ai

import (
	"fmt"
	"strings"
)

const categoryPromptTemplate = `You are a personal finance assistant. Assign a spending category to the expense below.

Expense description: %q

Existing categories: %s

Rules:
- Prefer one of the existing categories when a reasonable match exists.
- Otherwise suggest a single short new category name (e.g. "Groceries", "Transport").
- Respond with JSON only, exactly: {"category": "<name>"}`

const insightPromptTemplate = `You are a personal finance assistant. Write a short, friendly insight (3-5 sentences) about the spending summary below. Mention the biggest category, and when a previous period total is given say whether spending went up or down and by how much. Add one practical observation. Plain text only, no markdown.

Period: %s
Total spent: %s
Previous period total: %s
Number of expenses: %d
Spending by category:
%s`

func buildCategoryPrompt(description string, existing []string) string {
	categories := "(none yet)"
	if len(existing) > 0 {
		categories = strings.Join(existing, ", ")
	}
	return fmt.Sprintf(categoryPromptTemplate, description, categories)
}

func buildInsightPrompt(summary InsightSummary) string {
	previous := "(none)"
	if summary.PreviousTotal != nil {
		previous = *summary.PreviousTotal
	}

	var lines []string
	for _, c := range summary.ByCategory {
		lines = append(lines, fmt.Sprintf("- %s: %s", c.Name, c.Total))
	}
	if len(lines) == 0 {
		lines = append(lines, "- (no category breakdown)")
	}
	return fmt.Sprintf(insightPromptTemplate, summary.PeriodLabel, summary.Total, previous, summary.Count, strings.Join(lines, "\n"))
}
