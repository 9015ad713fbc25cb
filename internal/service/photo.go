package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"kalyanam/internal/config"
	"kalyanam/internal/models"
	"kalyanam/internal/repository"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	defaultPhotoUploadDir = "uploads/profiles"
	maxPhotoUploadBytes   = 5 * 1024 * 1024
	photoMaxDimension     = 1080
	photoJPEGQuality      = 82
	photoWebPQuality      = 70
)

// UploadPhotoInput carries one multipart photo upload into the service.
type UploadPhotoInput struct {
	UserID      uint
	Filename    string
	ContentType string
	Content     []byte
}

// PhotoService validates, normalizes and stores profile photos on local
// disk. Every accepted upload is re-encoded, so client bytes never reach
// the serving path untouched.
type PhotoService struct {
	profileRepo repository.ProfileRepository
	uploadDir   string
}

// NewPhotoService returns a new PhotoService.
func NewPhotoService(profileRepo repository.ProfileRepository, cfg *config.Config) *PhotoService {
	uploadDir := defaultPhotoUploadDir
	if cfg != nil && cfg.UploadDir != "" {
		uploadDir = cfg.UploadDir
	}
	return &PhotoService{profileRepo: profileRepo, uploadDir: uploadDir}
}

// Upload stores a new profile photo for the user and updates the profile's
// photo URL. The stored master is a JPEG capped at 1080px on the long edge,
// with a WebP sibling written next to it.
func (s *PhotoService) Upload(ctx context.Context, in UploadPhotoInput) (string, error) {
	if in.UserID == 0 {
		return "", models.NewValidationError("Invalid user")
	}
	if len(in.Content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if len(in.Content) > maxPhotoUploadBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", maxPhotoUploadBytes/(1024*1024)))
	}

	detected := http.DetectContentType(in.Content)
	if !isAllowedPhotoMIME(detected) {
		return "", models.NewValidationError("Only JPEG, PNG and WebP images are accepted")
	}
	if provided := normalizePhotoContentType(in.ContentType); strings.HasPrefix(provided, "image/") && !isAllowedPhotoMIME(provided) {
		return "", models.NewValidationError("Only JPEG, PNG and WebP images are accepted")
	}

	decoded, _, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}
	master := resizePhotoToFit(decoded, photoMaxDimension, photoMaxDimension)

	jpegBytes, err := encodePhotoJPEG(master, photoJPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	webpBytes, err := encodePhotoWebP(master, photoWebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	userDir := filepath.Join(s.uploadDir, fmt.Sprintf("%d", in.UserID))
	jpegPath := filepath.Join(userDir, "photo.jpg")
	webpPath := filepath.Join(userDir, "photo.webp")
	if err := writePhotoFile(jpegPath, jpegBytes); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := writePhotoFile(webpPath, webpBytes); err != nil {
		_ = os.Remove(jpegPath)
		return "", models.NewInternalError(err)
	}

	photoURL := fmt.Sprintf("/uploads/profiles/%d/photo.jpg", in.UserID)
	if err := s.profileRepo.UpdatePhotoURL(ctx, in.UserID, photoURL); err != nil {
		return "", err
	}
	return photoURL, nil
}

func isAllowedPhotoMIME(contentType string) bool {
	switch normalizePhotoContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}

func normalizePhotoContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func resizePhotoToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodePhotoJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePhotoWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePhotoFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
