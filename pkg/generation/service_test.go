package generation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(0, 1000)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the requested number of images", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Generate(ctx, GenerateOptions{Prompt: "a hero", NumImages: 3})
		require.NoError(t, err)
		require.Len(t, res.Images, 3)
		assert.Contains(t, res.ID, "mock-generation-")
	})

	t.Run("defaults to one image", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Generate(ctx, GenerateOptions{Prompt: "a hero"})
		require.NoError(t, err)
		assert.Len(t, res.Images, 1)
	})

	t.Run("clamps the count to the pool size", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Generate(ctx, GenerateOptions{Prompt: "a hero", NumImages: 8})
		require.NoError(t, err)
		assert.Len(t, res.Images, len(placeholderImages))
	})

	t.Run("draws distinct images from the pool", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Generate(ctx, GenerateOptions{Prompt: "a hero", NumImages: 4})
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, img := range res.Images {
			assert.Contains(t, placeholderImages, img)
			assert.False(t, seen[img])
			seen[img] = true
		}
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		svc := newTestService()
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.Generate(canceled, GenerateOptions{Prompt: "a hero", NumImages: 2})
		assert.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("replays a finished generation", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Generate(ctx, GenerateOptions{Prompt: "a hero", NumImages: 2})
		require.NoError(t, err)

		replay, ok := svc.Status(res.ID)
		require.True(t, ok)
		assert.Equal(t, res.Images, replay.Images)
		assert.Equal(t, res.ID, replay.ID)
	})

	t.Run("reports unknown ids", func(t *testing.T) {
		svc := newTestService()

		_, ok := svc.Status("mock-generation-unknown")
		assert.False(t, ok)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("discards the result", func(t *testing.T) {
		svc := newTestService()

		res, err := svc.Generate(ctx, GenerateOptions{Prompt: "a hero", NumImages: 1})
		require.NoError(t, err)

		assert.True(t, svc.Cancel(res.ID))

		_, ok := svc.Status(res.ID)
		assert.False(t, ok)
	})

	t.Run("tolerates unknown ids", func(t *testing.T) {
		svc := newTestService()

		assert.True(t, svc.Cancel("mock-generation-unknown"))
	})
}
