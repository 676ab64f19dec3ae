package archive

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"hauspet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobArchive_Save(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	archive := NewBlobArchive(bucket, "/voice-chat/").(*blobArchive)
	archive.now = func() time.Time { return time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	key, err := archive.Save(ctx, 42, []byte("audio-bytes"), "audio/mp4")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "voice-chat/42/2026-03-04/"), key)
	assert.True(t, strings.HasSuffix(key, ".m4a"), key)

	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), stored)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "audio/mp4", attrs.ContentType)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".mp3", extensionFor("audio/mpeg"))
	assert.Equal(t, ".wav", extensionFor("audio/wav; codecs=1"))
	assert.Equal(t, ".webm", extensionFor("audio/webm"))
	assert.Equal(t, ".m4a", extensionFor(""))
}

func TestNewAudioArchive(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled, err := NewAudioArchive(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: logger,
	})
	require.NoError(t, err)
	key, err := disabled.Save(context.Background(), 1, []byte("x"), "audio/mp4")
	require.NoError(t, err)
	assert.Empty(t, key)

	lc := fxtest.NewLifecycle(t)
	enabled, err := NewAudioArchive(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Archive: &config.ArchiveConfig{BucketURL: "mem://", Prefix: "voice"}},
		Logger: logger,
	})
	require.NoError(t, err)
	assert.IsType(t, &blobArchive{}, enabled)
	lc.RequireStart().RequireStop()
}
