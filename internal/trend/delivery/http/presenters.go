package http

import (
	"social-arch/internal/model"
	"social-arch/pkg/response"
)

type scanReq struct {
	// Category defaults to the one selected in settings.
	Category string `json:"category"`
}

type trendResp struct {
	Platform     string `json:"platform"`
	TrendName    string `json:"trendName"`
	Description  string `json:"description"`
	HypeReason   string `json:"hypeReason"`
	Category     string `json:"category,omitempty"`
	GrowthMetric string `json:"growthMetric,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Vibe         string `json:"vibe,omitempty"`
}

type snapshotResp struct {
	Category  string             `json:"category,omitempty"`
	Items     []trendResp        `json:"items"`
	ScannedAt *response.DateTime `json:"scannedAt,omitempty"`
}

func newSnapshotResp(s model.TrendSnapshot) snapshotResp {
	out := snapshotResp{
		Category: string(s.Category),
		Items:    make([]trendResp, len(s.Items)),
	}
	for i, it := range s.Items {
		out.Items[i] = trendResp{
			Platform:     it.Platform,
			TrendName:    it.TrendName,
			Description:  it.Description,
			HypeReason:   it.HypeReason,
			Category:     string(it.Category),
			GrowthMetric: it.GrowthMetric,
			Difficulty:   it.Difficulty,
			Vibe:         it.Vibe,
		}
	}
	out.ScannedAt = response.NewDateTimeMillis(s.ScannedAt)
	return out
}
