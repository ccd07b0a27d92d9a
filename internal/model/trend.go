package model

// TrendCategory groups trend scans.
type TrendCategory string

const (
	TrendCategoryGeneral TrendCategory = "General"
	TrendCategoryAudio   TrendCategory = "Viral Audio"
	TrendCategoryFormats TrendCategory = "Video Formats"
	TrendCategoryPlots   TrendCategory = "Hashtags & Plots"
)

// Valid reports whether c is a known category.
func (c TrendCategory) Valid() bool {
	switch c {
	case TrendCategoryGeneral, TrendCategoryAudio, TrendCategoryFormats, TrendCategoryPlots:
		return true
	}
	return false
}

// TrendItem is a single trend produced by the generation backend.
type TrendItem struct {
	Platform     string        `json:"platform"`
	TrendName    string        `json:"trendName"`
	Description  string        `json:"description"`
	HypeReason   string        `json:"hypeReason"`
	Category     TrendCategory `json:"category,omitempty"`
	GrowthMetric string        `json:"growthMetric,omitempty"`
	Difficulty   string        `json:"difficulty,omitempty"`
	Vibe         string        `json:"vibe,omitempty"`
}

// TrendSnapshot is the cached result of the last trend scan.
type TrendSnapshot struct {
	Category  TrendCategory `json:"category"`
	Items     []TrendItem   `json:"items"`
	ScannedAt int64         `json:"scannedAt"` // unix milliseconds, zero before the first scan
}
