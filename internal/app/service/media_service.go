package service

import (
	"github.com/sjpark/storefront-backend/internal/app/model"
	"github.com/sjpark/storefront-backend/internal/storage"
)

// placeholderImage is returned for products without a thumbnail.
const placeholderImage = "no-image.png"

// MediaService maps media references to displayable URLs.
type MediaService interface {
	GetMediaURL(media *model.Media) string
	GetMediaURLByFileName(fileName string) string
	GetThumbnailURL(media *model.Media) string
}

type mediaService struct {
	storage storage.Service
}

func NewMediaService(storageService storage.Service) MediaService {
	return &mediaService{storage: storageService}
}

func (s *mediaService) GetMediaURL(media *model.Media) string {
	if media == nil || media.FileName == "" {
		return s.GetMediaURLByFileName(placeholderImage)
	}
	return s.GetMediaURLByFileName(media.FileName)
}

func (s *mediaService) GetMediaURLByFileName(fileName string) string {
	return s.storage.GetMediaURL(fileName)
}

func (s *mediaService) GetThumbnailURL(media *model.Media) string {
	return s.GetMediaURL(media)
}
