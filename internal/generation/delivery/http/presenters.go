package http

type generateReq struct {
	Prompt string `json:"prompt" binding:"required"`
	System string `json:"system"`
}

type textResp struct {
	Text string `json:"text"`
}
