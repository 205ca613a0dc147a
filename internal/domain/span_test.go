package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	t.Run("profile from ctx is left for its owner to end", func(t *testing.T) {
		owned, endOwned := NewProfile()
		ctx := context.WithValue(context.Background(), ContextProfileKey, owned)

		profile, endProfile := GetProfile(ctx)
		require.Same(t, owned, profile)

		_, endSpan := profile.StartNewSpan("fetch")
		endSpan()
		endProfile()
		require.Nil(t, owned.TotalMs)
		require.Len(t, owned.Spans, 1)
		require.NotNil(t, owned.Spans[0].Elapsed)

		endOwned()
		require.NotNil(t, owned.TotalMs)
	})

	t.Run("detached profile when ctx has none", func(t *testing.T) {
		profile, endProfile := GetProfile(context.Background())
		require.NotNil(t, profile)

		endProfile()
		require.NotNil(t, profile.TotalMs)
	})
}
