package text

type GenerateTextRequest struct {
	Prompt string `json:"prompt" binding:"required,notblank" example:"Say hi"`
	Model  string `json:"model" example:"gpt-3.5-turbo"` // Optional, defaults to the configured model
}

type GenerateTextResponse struct {
	Result string `json:"result" example:"Hello!"`
	Model  string `json:"model"`
}
