package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/IPampurin/LinkManager/pkg/configuration"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/wb-go/wbf/logger"
)

// S3Store хранит клиент S3-совместимого объектного хранилища (R2, MinIO и т.п.)
type S3Store struct {
	client    *s3.Client
	bucket    string
	endpoint  string
	publicURL string
}

// InitS3 инициализирует клиент объектного хранилища по конфигурации
func InitS3(ctx context.Context, cfgS3 *configuration.ConfS3, log logger.Logger) (*S3Store, error) {

	// собираем конфигурацию SDK со статическими ключами доступа
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfgS3.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfgS3.AccessKey, cfgS3.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации клиента S3: %w", err)
	}

	// приватный endpoint и path-style нужны для совместимых хранилищ
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfgS3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfgS3.Endpoint)
		}
		o.UsePathStyle = true
	})

	store := &S3Store{
		client:    client,
		bucket:    cfgS3.Bucket,
		endpoint:  cfgS3.Endpoint,
		publicURL: cfgS3.PublicURL,
	}

	log.Info("Клиент объектного хранилища получен.", "bucket", cfgS3.Bucket)

	return store, nil
}

// Upload загружает объект в бакет одним блокирующим вызовом, без повторных попыток
func (s *S3Store) Upload(ctx context.Context, key string, data []byte, contentType string) error {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("ошибка загрузки объекта %s в бакет %s: %w", key, s.bucket, err)
	}

	return nil
}

// PublicURL собирает публично доступный адрес объекта:
// приоритет у настроенного публичного домена, иначе endpoint/bucket/key
func (s *S3Store) PublicURL(key string) string {

	if s.publicURL != "" {
		return strings.TrimRight(s.publicURL, "/") + "/" + key
	}

	return strings.TrimRight(s.endpoint, "/") + "/" + s.bucket + "/" + key
}
