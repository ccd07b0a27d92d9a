package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"social-arch/internal/generation"
	"social-arch/internal/model"
	"social-arch/pkg/llmprovider"
)

var jsonFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

func (uc *implUseCase) ScanTrends(ctx context.Context, category model.TrendCategory) ([]model.TrendItem, error) {
	if category == "" {
		category = model.TrendCategoryGeneral
	}
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	query, system := trendQuery(category)

	var req *llmprovider.Request
	if s.LLMSource == model.LLMSourceCloudGemini || s.LLMSource == "" {
		req = llmprovider.NewTextRequest(query+"\n"+trendSchemaInstruction, system)
		req.GoogleSearch = true
	} else {
		// Custom backends have no search tool; Gemini fetches the raw data first.
		raw := uc.searchBridge(ctx, query)
		req = llmprovider.NewTextRequest(fmt.Sprintf("Use this data: %s. %s", raw, trendSchemaInstruction), system)
	}

	text, err := uc.run(ctx, s, req)
	if err != nil {
		return nil, err
	}

	items, err := parseTrends(text)
	if err != nil {
		uc.l.Warnf(ctx, "generation.usecase.ScanTrends: unparseable response for %s: %v", category, err)
		return nil, fmt.Errorf("%w: %v", generation.ErrGeneration, err)
	}
	for i := range items {
		items[i].Category = category
	}
	return items, nil
}

// searchBridge asks Gemini with search grounding for raw results on query.
// Failures degrade to a placeholder so the custom backend still answers.
func (uc *implUseCase) searchBridge(ctx context.Context, query string) string {
	if !uc.cloudReady() {
		return noSearchData
	}

	req := llmprovider.NewTextRequest(searchBridgePrompt(query), "")
	req.GoogleSearch = true

	resp, err := uc.cloud.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "generation.usecase.searchBridge: %v", err)
		return "Could not fetch online context due to connection error."
	}
	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text
	}
	return noSearchData
}

// sanitizeJSONResponse removes markdown code fences and surrounding prose
// that LLMs often add around a JSON array.
func sanitizeJSONResponse(text string) string {
	if m := jsonFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

func parseTrends(text string) ([]model.TrendItem, error) {
	var items []model.TrendItem
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &items); err != nil {
		return nil, fmt.Errorf("decode trends: %w", err)
	}
	return items, nil
}
