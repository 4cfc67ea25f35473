package services

import (
	"fmt"
	"mime/multipart"

	"github.com/floranflowers/floran-api/utils"
)

// LogoService handles corporate branding-logo upload, retrieval, and deletion
type LogoService interface {
	// UploadLogo validates and uploads a logo file, returns the storage key
	UploadLogo(fileHeader *multipart.FileHeader) (string, error)

	// GetLogoURL generates a URL for accessing an uploaded logo
	GetLogoURL(logoKey string) (string, error)

	// DeleteLogo removes a logo from storage
	DeleteLogo(logoKey string) error
}

// S3LogoService implements LogoService using AWS S3 for storage
type S3LogoService struct {
	s3Service S3Interface
}

var logoServiceInstance LogoService

// InitLogoService initializes the logo service with an S3 backend
func InitLogoService(s3Service S3Interface) LogoService {
	logoServiceInstance = &S3LogoService{s3Service: s3Service}
	return logoServiceInstance
}

// GetLogoService returns the initialized logo service instance
func GetLogoService() LogoService {
	return logoServiceInstance
}

// SetLogoService sets the logo service instance (primarily for testing)
func SetLogoService(service LogoService) {
	logoServiceInstance = service
}

// UploadLogo validates and uploads a logo file to S3
func (s *S3LogoService) UploadLogo(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return s3Key, nil
}

// GetLogoURL generates a presigned URL for accessing a logo
func (s *S3LogoService) GetLogoURL(logoKey string) (string, error) {
	if logoKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(logoKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate logo URL: %w", err)
	}

	return url, nil
}

// DeleteLogo deletes a logo from S3
func (s *S3LogoService) DeleteLogo(logoKey string) error {
	if logoKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(logoKey); err != nil {
		return fmt.Errorf("failed to delete logo: %w", err)
	}

	return nil
}
