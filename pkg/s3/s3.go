package s3

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client wraps the attachment bucket used for entry images and exported
// voice notes.
type Client struct {
	Endpoint string
	Region   string
	Bucket   string
	ak       string
	sk       string
}

func NewClient(endpoint, region, bucket, ak, sk string) *Client {
	return &Client{
		Endpoint: endpoint,
		Region:   region,
		Bucket:   bucket,
		ak:       ak,
		sk:       sk,
	}
}

func (s *Client) awsConfig(ctx context.Context) (aws.Config, error) {
	return config.LoadDefaultConfig(
		ctx,
		config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID: s.ak, SecretAccessKey: s.sk,
			},
		}),
		config.WithRegion(s.Region),
		config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL: s.Endpoint,
			}, nil
		})))
}

// GenClientUploadKey presigns a PUT the browser can use to upload an
// attachment directly.
func (s *Client) GenClientUploadKey(ctx context.Context, filePath, file string) (string, error) {
	filePath = strings.TrimPrefix(filePath, "/")
	cfg, err := s.awsConfig(ctx)
	if err != nil {
		return "", err
	}

	presign := s3.NewPresignClient(s3.NewFromConfig(cfg))
	req, err := presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(filepath.Join(filePath, file)),
	}, s3.WithPresignExpires(time.Minute*10))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *Client) Upload(ctx context.Context, filePath, file string, body io.Reader) error {
	filePath = strings.TrimPrefix(filePath, "/")
	cfg, err := s.awsConfig(ctx)
	if err != nil {
		return err
	}

	uploader := manager.NewUploader(s3.NewFromConfig(cfg))
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(filepath.Join(filePath, file)),
		Body:   body,
	})
	return err
}

func (s *Client) Delete(ctx context.Context, fullPath string) error {
	cfg, err := s.awsConfig(ctx)
	if err != nil {
		return err
	}

	client := s3.NewFromConfig(cfg)
	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullPath),
	})
	return err
}
