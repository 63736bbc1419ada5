package mocks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/control-validator/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestMockGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("completion", func(t *testing.T) {
		gen := NewMockGeneratorWithCompletion("VALID")
		got, err := gen.Generate(ctx, "p1")
		assert.NoError(t, err)
		assert.Equal(t, "VALID", got)
		assert.Equal(t, 1, gen.CallCount())
		assert.Equal(t, "p1", gen.LastPrompt())
		assert.Equal(t, "mock", gen.Model())
	})

	t.Run("error", func(t *testing.T) {
		wantErr := errors.New("boom")
		gen := NewMockGeneratorWithError(wantErr)
		_, err := gen.Generate(ctx, "p")
		assert.Same(t, wantErr, err)
	})

	t.Run("content blocked", func(t *testing.T) {
		_, err := MockGeneratorWithContentBlocked().Generate(ctx, "p")
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
		assert.True(t, generation.IsProviderError(err))
	})

	t.Run("custom function", func(t *testing.T) {
		gen := &MockGenerator{GenerateFn: func(_ context.Context, p string) (string, error) {
			return "echo " + p, nil
		}}
		got, _ := gen.Generate(ctx, "x")
		assert.Equal(t, "echo x", got)
	})

	t.Run("concurrent calls and reset", func(t *testing.T) {
		gen := NewMockGeneratorWithCompletion("ok")
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = gen.Generate(ctx, "p")
			}()
		}
		wg.Wait()
		assert.Equal(t, 20, gen.CallCount())

		gen.Reset()
		assert.Zero(t, gen.CallCount())
		assert.Empty(t, gen.LastPrompt())
	})
}
