package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/glamora/salon-scheduler/internal/config"
	"github.com/glamora/salon-scheduler/internal/httperr"
)

const (
	maxEdge     = 1024
	webpQuality = 82
)

// Uploader re-encodes service images to webp and stores them in an
// S3-compatible bucket.
type Uploader struct {
	client *s3.Client
	bucket string
	base   string
}

// NewUploader returns nil when no bucket is configured; callers skip
// the upload route in that case.
func NewUploader(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	base := cfg.S3PublicBase
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
		base:   strings.TrimRight(base, "/"),
	}
}

// UploadServiceImage decodes, downscales, webp-encodes and uploads the
// image, returning its public URL.
func (u *Uploader) UploadServiceImage(
	ctx context.Context,
	serviceID uint,
	r io.Reader,
) (string, error) {

	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	src = shrink(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("services/%d/%s.webp", serviceID, uuid.NewString())

	if _, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	}); err != nil {
		return "", err
	}

	return u.base + "/" + key, nil
}

func shrink(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
