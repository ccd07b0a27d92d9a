package usecase

import (
	"fmt"

	"social-arch/internal/model"
)

const (
	ideaSystem = "You are a Creative Director."

	trendSchemaInstruction = "Output requirements: Return ONLY the raw JSON array inside a ```json block. " +
		`Structure: [{ "platform": "Instagram", "trendName": "...", "description": "...", "hypeReason": "...", "growthMetric": "...", "vibe": "..." }]`

	trendsSystemGeneral = `You are a Real-time Trend Analyst for the 3D Art and CGI industry.
You MUST use Google Search to find *current* information.
Focus on:
- Trending hashtags on Twitter/Instagram/ArtStation.
- New software features (Blender updates, Unreal Engine 5 tech demos).
- Viral challenges (e.g., "Nodevember", "SculptJanuary").
- Popular aesthetics (e.g., Cyberpunk, Solarpunk, NPR).`

	trendsSystemAudio = `You are a Viral Music Analyst for TikTok and Instagram Reels.
SEARCH GOAL: Find trending audio, songs, and sound effects used by artists/creators THIS WEEK.
Analyze growth metrics.
Put the song as "Song Name - Artist" in trendName and the used segment in description.`

	trendsSystemFormats = `You are a Video Format Strategist.
SEARCH GOAL: Identify trending video editing styles, templates, and formats (e.g., 'Wes Anderson style', 'Fast match cut', 'ASMR modeling').
Focus on formats top 3D artists are using.
Rate each format in a "difficulty" field: Easy/Medium/Hard.`

	trendsSystemPlots = `You are a Script & Hashtag Analyst.
SEARCH GOAL: Find trending plot clichés (e.g., 'My progress in 1 year'), emotional hooks (Satisfying, Relaxing), and exploding hashtags.`

	searchBridgeTemplate = `You are a Search Engine Interface.
QUERY: %q

INSTRUCTIONS:
1. Use the 'googleSearch' tool to find the most recent, relevant, and high-traffic information.
2. Return a comprehensive summary of the SEARCH RESULTS.
3. Focus on facts, dates, numbers, and specific trend names.
4. Do NOT write a social media post. Just output the raw information found.`

	noSearchData = "No search results found."
)

func ideaPrompt(language string) string {
	return fmt.Sprintf("Generate ONE unique content idea for a 3D Artist (Blender/Maya). Output ONLY the idea. Language: %s", language)
}

// trendQuery returns the search query and system instruction for a category.
func trendQuery(c model.TrendCategory) (query, system string) {
	switch c {
	case model.TrendCategoryAudio:
		return "Trending audio and songs on TikTok and Instagram Reels for art/tech this week.", trendsSystemAudio
	case model.TrendCategoryFormats:
		return "Viral video editing formats and templates for 3D artists Instagram TikTok.", trendsSystemFormats
	case model.TrendCategoryPlots:
		return "Trending hashtags and satisfying video concepts for 3D rendering.", trendsSystemPlots
	default:
		return "Find latest 3D Art trends.", trendsSystemGeneral
	}
}

func searchBridgePrompt(query string) string {
	return fmt.Sprintf(searchBridgeTemplate, query)
}
