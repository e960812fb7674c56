package dto

// UploadResponse carries the URL of an uploaded file.
type UploadResponse struct {
	URL string `json:"url"`
}
