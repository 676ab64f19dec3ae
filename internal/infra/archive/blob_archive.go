// Package archive stores voice chat uploads in a gocloud blob bucket.
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"hauspet/config"
	"hauspet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets in production
)

type blobArchive struct {
	bucket *blob.Bucket
	prefix string
	now    func() time.Time
}

// Params holds dependencies for the audio archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAudioArchive opens the configured bucket. Without a bucket URL uploads are not kept.
func NewAudioArchive(params Params) (service.AudioArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Audio archive not configured, voice uploads will not be stored")

		return disabledArchive{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "close archive bucket")
		},
	})

	return NewBlobArchive(bucket, cfg.Prefix), nil
}

// NewBlobArchive wraps an already opened bucket.
func NewBlobArchive(bucket *blob.Bucket, prefix string) service.AudioArchive {
	return &blobArchive{bucket: bucket, prefix: strings.Trim(prefix, "/"), now: time.Now}
}

// Save writes the audio under <prefix>/<user>/<date>/<uuid>.<ext>.
func (a *blobArchive) Save(ctx context.Context, userID uint, audio []byte, contentType string) (string, error) {
	key := path.Join(
		a.prefix,
		fmt.Sprintf("%d", userID),
		a.now().UTC().Format("2006-01-02"),
		uuid.NewString()+extensionFor(contentType),
	)

	if err := a.bucket.WriteAll(ctx, key, audio, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "write %s", key)
	}

	return key, nil
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	case "audio/webm":
		return ".webm"
	default:
		return ".m4a"
	}
}

type disabledArchive struct{}

func (disabledArchive) Save(context.Context, uint, []byte, string) (string, error) {
	return "", nil
}
