package transport

// LoadRequest carries a share URL or a bare room code.
type LoadRequest struct {
	Input string `json:"input" binding:"required,max=2048"`
}

// VolumeRequest sets the player volume; values outside 0-100 are clamped.
type VolumeRequest struct {
	Volume *int `json:"volume" binding:"required"`
}

type LayerRequest struct {
	URL string `json:"url" binding:"required,streamurl"`
}
