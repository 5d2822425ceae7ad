package s3

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// All blog media lives under a single key prefix inside the bucket.
const keyPrefix = "blog-images/"

const defaultExpiration = 300 * time.Second

type ItfS3 interface {
	SignedPutURL(contentType, key string) (string, error)
	SignedGetURL(key string) (string, error)
	DeleteFiles(keys []string) error
}

type s3Client struct {
	client     *s3.S3
	bucketName string
	expiration time.Duration
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		bucketName: os.Getenv("S3_BUCKET_NAME"),
		expiration: signedURLExpiration(),
	}, nil
}

// SignedPutURL returns a time-limited URL the frontend uploads to directly.
// The server never relays the bytes itself.
func (s *s3Client) SignedPutURL(contentType, key string) (string, error) {
	req, _ := s.client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(keyPrefix + key),
		ContentType: aws.String(contentType),
	})

	urlStr, err := req.Presign(s.expiration)
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL: %w", err)
	}

	return urlStr, nil
}

func (s *s3Client) SignedGetURL(key string) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(keyPrefix + key),
	})

	urlStr, err := req.Presign(s.expiration)
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL: %w", err)
	}

	return urlStr, nil
}

func (s *s3Client) DeleteFiles(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]*s3.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, &s3.ObjectIdentifier{
			Key: aws.String(keyPrefix + key),
		})
	}

	_, err := s.client.DeleteObjects(&s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucketName),
		Delete: &s3.Delete{
			Objects: objects,
		},
	})

	return err
}

func newSession() (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})

	if err != nil {
		return nil, err
	}

	return sess, nil
}

func signedURLExpiration() time.Duration {
	raw := os.Getenv("SIGNED_URL_EXPIRATION")
	if raw == "" {
		return defaultExpiration
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return defaultExpiration
	}

	return time.Duration(seconds) * time.Second
}
