package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/stacks-cli/internal/core/domain"
)

func TestAvailability_UninitializedIsNotReady(t *testing.T) {
	avail := NewAvailability()
	assert.ErrorIs(t, avail.Ready(), domain.ErrIndexNotInitialized)
}

func TestAvailability_InitializedIsReady(t *testing.T) {
	avail := NewAvailability()
	avail.MarkInitialized()
	assert.NoError(t, avail.Ready())
}

func TestAvailability_RebuildingIsTemporarilyUnavailable(t *testing.T) {
	avail := NewAvailability()
	avail.MarkInitialized()

	require.NoError(t, avail.BeginRebuild())

	err := avail.Ready()
	var unavailable *domain.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.True(t, unavailable.Temporary)

	avail.EndRebuild()
	assert.NoError(t, avail.Ready())
}

func TestAvailability_ConcurrentRebuildRejected(t *testing.T) {
	avail := NewAvailability()
	avail.MarkInitialized()

	require.NoError(t, avail.BeginRebuild())
	assert.Error(t, avail.BeginRebuild())

	avail.EndRebuild()
	assert.NoError(t, avail.BeginRebuild())
	avail.EndRebuild()
}
