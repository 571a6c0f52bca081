package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// MaxImageSize is the upload cap for image analysis (10 MiB).
const MaxImageSize = 10 << 20

// AnalysisResult is what the image analysis endpoint extracted from a
// photo of a food item.
type AnalysisResult struct {
	ImageURL       string `json:"image_url"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	ExpirationDate string `json:"expiration_date"`
}

// AnalyzeImage uploads an image file for analysis. The server stores the
// image and returns its best guess at the item's name, category and
// expiration date.
func (c *Client) AnalyzeImage(path string) (*AnalysisResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxImageSize {
		return nil, fmt.Errorf("image exceeds %d MB limit", MaxImageSize>>20)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/image/ocr", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result AnalysisResult
	if err := c.send(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
