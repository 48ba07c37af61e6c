// Package s3 stores payloads as objects in an S3 bucket, one object per
// identifier. It backs deployments without a relational database.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

const keyPrefix = "payloads/"

type PayloadRepository struct {
	client *s3.Client
	bucket string
}

func New(ctx context.Context, region, bucket, endpoint string) (*PayloadRepository, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &PayloadRepository{
		client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
				o.UsePathStyle = true
			}
		}),
		bucket: bucket,
	}, nil
}

// GetOrCreate writes the object with If-None-Match: *, so S3 itself rejects
// the write when the identifier already exists. A PreconditionFailed answer
// means another submission won the race, which counts as success.
func (r *PayloadRepository) GetOrCreate(ctx context.Context, identifier, output string) (bool, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(keyPrefix + identifier),
		Body:        bytes.NewReader([]byte(output)),
		ContentType: aws.String("text/plain; charset=utf-8"),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return false, nil
		}
		return false, fmt.Errorf("s3 put object: %w", err)
	}
	return true, nil
}

func (r *PayloadRepository) Find(ctx context.Context, identifier string) (string, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(keyPrefix + identifier),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return "", port.ErrPayloadNotFound
		}
		return "", fmt.Errorf("s3 get object: %w", err)
	}
	defer out.Body.Close()

	var sb strings.Builder
	if _, err := io.Copy(&sb, out.Body); err != nil {
		return "", fmt.Errorf("s3 read object: %w", err)
	}
	return sb.String(), nil
}

var _ port.PayloadRepository = (*PayloadRepository)(nil)
