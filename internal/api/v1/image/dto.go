package image

type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required,notblank" example:"A watercolor fox in the snow"`
	Size   string `json:"size" binding:"omitempty,oneof=256x256 512x512 1024x1024" example:"512x512"` // Optional, defaults to 512x512
}

type GenerateImageResponse struct {
	URL  string `json:"url"`
	Size string `json:"size"`
}
