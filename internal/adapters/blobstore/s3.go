package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"tarantula-husbandry/internal/ports/blob"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type s3Store struct {
	client    *s3.Client
	bucket    string
	urlPrefix string
}

// NewS3 escribe en un bucket S3-compatible. urlBase es la raíz pública de
// los objetos (p.ej. https://bucket.s3.region.amazonaws.com o el endpoint
// custom en MinIO); las URLs emitidas son urlBase/{key}.
func NewS3(client *s3.Client, bucket, urlBase string) (blob.Store, error) {
	if client == nil {
		return nil, fmt.Errorf("nil s3 client")
	}
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	return &s3Store{
		client:    client,
		bucket:    bucket,
		urlPrefix: strings.TrimRight(urlBase, "/") + "/",
	}, nil
}

func (s *s3Store) Put(ctx context.Context, ownerID, filename string, r io.Reader, contentType string) (blob.Info, error) {
	owner := sanitizeSegment(ownerID)
	if owner == "" {
		return blob.Info{}, fmt.Errorf("invalid owner id")
	}
	name := sanitizeSegment(filename)
	if name == "" {
		name = "file"
	}

	key := owner + "/" + uuid.NewString() + "-" + name

	// El SDK necesita el tamaño; bufferizamos (los uploads ya están
	// limitados por el handler).
	data, err := io.ReadAll(r)
	if err != nil {
		return blob.Info{}, err
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return blob.Info{}, fmt.Errorf("s3 put: %w", err)
	}

	return blob.Info{
		Key:         key,
		URL:         s.urlPrefix + key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *s3Store) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	clean, err := validKey(key)
	if err != nil {
		return nil, "", err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(clean),
	})
	if err != nil {
		return nil, "", fmt.Errorf("s3 get: %w", err)
	}
	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return out.Body, contentType, nil
}

func (s *s3Store) KeyFromURL(u string) string {
	if strings.HasPrefix(u, s.urlPrefix) {
		key := strings.TrimPrefix(u, s.urlPrefix)
		if _, err := validKey(key); err == nil {
			return key
		}
	}
	return ""
}
