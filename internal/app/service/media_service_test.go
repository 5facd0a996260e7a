package service

import (
	"testing"

	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestMediaService_GetMediaURL(t *testing.T) {
	mediaService := NewMediaService(storage.NewLocalStorage())

	url := mediaService.GetMediaURL(&model.Media{FileName: "banner.jpg"})
	assert.Equal(t, "/user-content/banner.jpg", url)
}

func TestMediaService_GetMediaURL_NilFallsBackToPlaceholder(t *testing.T) {
	mediaService := NewMediaService(storage.NewLocalStorage())

	url := mediaService.GetMediaURL(nil)
	assert.Equal(t, "/user-content/no-image.png", url)
}

func TestMediaService_GetMediaURL_EmptyFileName(t *testing.T) {
	mediaService := NewMediaService(storage.NewLocalStorage())

	url := mediaService.GetMediaURL(&model.Media{})
	assert.Equal(t, "/user-content/no-image.png", url)
}

func TestMediaService_GetThumbnailURL_CDNStorage(t *testing.T) {
	mediaService := NewMediaService(storage.NewCDNStorage("https://cdn.example.com/"))

	url := mediaService.GetThumbnailURL(&model.Media{FileName: "thumb.png"})
	assert.Equal(t, "https://cdn.example.com/thumb.png", url)
}
