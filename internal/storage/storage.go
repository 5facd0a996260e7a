package storage

import (
	"strings"
)

// Service resolves a stored media file name to a publicly reachable URL.
// Upload and deletion are handled elsewhere; the cart core only renders.
type Service interface {
	GetMediaURL(fileName string) string
}

// LocalStorage resolves media under the application's own user-content path.
type LocalStorage struct{}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

func (s *LocalStorage) GetMediaURL(fileName string) string {
	return "/user-content/" + fileName
}

// CDNStorage resolves media against an external base URL, e.g. a CloudFront
// distribution in front of the media bucket.
type CDNStorage struct {
	baseURL string
}

func NewCDNStorage(baseURL string) *CDNStorage {
	return &CDNStorage{baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *CDNStorage) GetMediaURL(fileName string) string {
	return s.baseURL + "/" + fileName
}
