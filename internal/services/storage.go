package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var (
	s3Session *session.Session
	s3Client  *s3.S3
	uploader  *s3manager.Uploader
	useS3     bool
	baseURL   string
	uploadDir string
)

// InitStorage initializes either S3 or local storage based on configuration
func InitStorage() error {
	// Try to initialize S3
	awsRegion := os.Getenv("AWS_REGION")
	awsAccessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	awsSecretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if awsRegion != "" && awsAccessKey != "" && awsSecretKey != "" {
		// AWS credentials are configured, use S3
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(awsRegion),
			Credentials: credentials.NewStaticCredentials(
				awsAccessKey,
				awsSecretKey,
				"", // Token (optional)
			),
		})
		if err != nil {
			return fmt.Errorf("failed to create AWS session: %v", err)
		}

		s3Session = sess
		s3Client = s3.New(sess)
		uploader = s3manager.NewUploader(sess)
		useS3 = true

		fmt.Println("✅ AWS S3 storage initialized successfully")
		return nil
	}

	// Fallback to local storage
	useS3 = false
	uploadDir = os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "/app/uploads"
	}
	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Create upload directory
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %v", err)
	}

	fmt.Println("⚠️  AWS S3 not configured. Using local file storage (not recommended for production)")
	return nil
}

// UploadDir returns the directory static uploads are served from in local mode.
func UploadDir() string {
	return uploadDir
}

// decodeBase64Image decodes a base64 payload, with or without a data URI
// prefix, and sniffs its content type.
func decodeBase64Image(data string) ([]byte, string, error) {
	if idx := strings.Index(data, ";base64,"); idx != -1 {
		data = data[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %v", err)
	}
	if len(raw) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}

	contentType := http.DetectContentType(raw)
	return raw, contentType, nil
}

// extensionFor maps a sniffed content type to a file extension.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

// UploadBase64Image stores a base64-encoded image and returns its public URL
func UploadBase64Image(data string, folder string) (string, error) {
	raw, contentType, err := decodeBase64Image(data)
	if err != nil {
		return "", err
	}

	if useS3 {
		return uploadToS3(raw, contentType, folder)
	}
	return uploadLocally(raw, contentType, folder)
}

// uploadToS3 uploads image bytes to AWS S3
func uploadToS3(raw []byte, contentType, folder string) (string, error) {
	bucketName := os.Getenv("AWS_S3_BUCKET")
	if bucketName == "" {
		return "", fmt.Errorf("S3 bucket name not configured")
	}

	// Generate unique filename
	fileName := fmt.Sprintf("%s/%d%s", folder, time.Now().UnixNano(), extensionFor(contentType))

	// Upload to S3
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String(contentType),
		// ACL removed - bucket uses bucket policy for public access instead
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	// Construct the public URL manually
	awsRegion := os.Getenv("AWS_REGION")
	publicURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucketName, awsRegion, fileName)

	return publicURL, nil
}

// uploadLocally stores image bytes under the upload directory
func uploadLocally(raw []byte, contentType, folder string) (string, error) {
	folderPath := filepath.Join(uploadDir, folder)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder directory: %v", err)
	}

	// Generate unique filename
	fileName := fmt.Sprintf("%d%s", time.Now().UnixNano(), extensionFor(contentType))
	filePath := filepath.Join(folderPath, fileName)

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	// Return the served URL for the relative path
	relativePath := filepath.ToSlash(filepath.Join(folder, fileName))
	return fmt.Sprintf("%s/uploads/%s", baseURL, relativePath), nil
}

// deleteFromS3 deletes a file from AWS S3
func deleteFromS3(key string) error {
	if s3Client == nil {
		return fmt.Errorf("S3 client not initialized")
	}

	bucketName := os.Getenv("AWS_S3_BUCKET")
	if bucketName == "" {
		return fmt.Errorf("S3 bucket name not configured")
	}

	_, err := s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	return err
}

// DeleteImage deletes a stored image given its public URL
func DeleteImage(imageURL string) error {
	if useS3 {
		// URL format: https://bucket.s3.region.amazonaws.com/folder/filename
		parts := strings.SplitN(imageURL, ".amazonaws.com/", 2)
		if len(parts) != 2 {
			return fmt.Errorf("unrecognized S3 URL: %s", imageURL)
		}
		return deleteFromS3(parts[1])
	}

	// Local URL format: http://host/uploads/folder/filename
	parts := strings.SplitN(imageURL, "/uploads/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("unrecognized upload URL: %s", imageURL)
	}
	return os.Remove(filepath.Join(uploadDir, filepath.FromSlash(parts[1])))
}

// IsUsingS3 returns true if S3 storage is being used
func IsUsingS3() bool {
	return useS3
}

// MediaStorage adapts the storage service to the booking package's
// MediaStore interface.
type MediaStorage struct{}

func NewMediaStorage() *MediaStorage {
	return &MediaStorage{}
}

// StoreImages persists a batch of base64 images and returns their URLs in
// the same order.
func (MediaStorage) StoreImages(ctx context.Context, images []string, folder string) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := UploadBase64Image(img, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
