package blobstore

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tarantula-husbandry/internal/platform/logger"
	"tarantula-husbandry/internal/ports/blob"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// OpenFromEnv elige el backend según la config presente:
//   - S3 si S3_BUCKET, S3_ACCESS_KEY_ID y S3_SECRET_ACCESS_KEY están todos
//     seteados (S3_ENDPOINT y S3_FORCE_PATH_STYLE opcionales para MinIO)
//   - filesystem local bajo UPLOADS_DIR (default ./uploads) en otro caso
func OpenFromEnv(ctx context.Context, log logger.Logger) (blob.Store, error) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	keyID := strings.TrimSpace(os.Getenv("S3_ACCESS_KEY_ID"))
	secret := strings.TrimSpace(os.Getenv("S3_SECRET_ACCESS_KEY"))

	if bucket != "" && keyID != "" && secret != "" {
		region := strings.TrimSpace(os.Getenv("S3_REGION"))
		if region == "" {
			region = "us-east-1"
		}
		endpoint := strings.TrimSpace(os.Getenv("S3_ENDPOINT"))
		pathStyle := os.Getenv("S3_FORCE_PATH_STYLE") == "1" || strings.EqualFold(os.Getenv("S3_FORCE_PATH_STYLE"), "true")

		cfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion(region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(keyID, secret, "")),
		)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		client := s3.NewFromConfig(cfg, func(o *s3.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
			o.UsePathStyle = pathStyle
		})

		urlBase := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
		if endpoint != "" {
			urlBase = strings.TrimRight(endpoint, "/") + "/" + bucket
		}

		log.Info("blob store: s3", map[string]any{"bucket": bucket, "region": region})
		return NewS3(client, bucket, urlBase)
	}

	root := os.Getenv("UPLOADS_DIR")
	if strings.TrimSpace(root) == "" {
		root = "./uploads"
	}
	log.Info("blob store: filesystem", map[string]any{"root": root})
	return NewFS(root)
}

// FSRoot devuelve el directorio base si el store es filesystem
// (el router lo necesita para montar /uploads/*).
func FSRoot(s blob.Store) (string, bool) {
	fs, ok := s.(*fsStore)
	if !ok {
		return "", false
	}
	return fs.Root(), true
}
