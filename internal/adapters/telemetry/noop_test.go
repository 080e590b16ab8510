package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/telemetry"
	"go.trai.ch/bundle/internal/core/domain"
	"go.trai.ch/bundle/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	t.Parallel()

	tel := telemetry.NewNoOp()
	ctx, v := tel.Record(context.Background(), "emit")

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, v, fromCtx)

	n, err := v.Stdout().Write([]byte("out"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	v.Log(domain.LogLevelInfo, "msg")
	v.Cached()
	v.Complete(errors.New("boom"))
	assert.NoError(t, tel.Close())
}
