//go:build unit

package incident_test

import (
	"testing"
	"time"

	"servicedesk/internal/domain/incident"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncident(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("作成時はopenでcreated_at=updated_at", func(t *testing.T) {
		inc, err := incident.NewIncident(uuid.New(), "printer down", "3F printer offline", now)
		require.NoError(t, err)

		assert.Equal(t, incident.StatusOpen, inc.Status())
		assert.Equal(t, now, inc.CreatedAt())
		assert.Equal(t, now, inc.UpdatedAt())
		assert.Nil(t, inc.AssigneeID())
		assert.Nil(t, inc.ResolutionTime())
	})

	t.Run("空タイトルNG", func(t *testing.T) {
		_, err := incident.NewIncident(uuid.New(), "  ", "desc", now)
		require.ErrorIs(t, err, incident.ErrEmptyTitle)
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	newIncident := func(t *testing.T) *incident.Incident {
		t.Helper()
		inc, err := incident.NewIncident(uuid.New(), "printer down", "", now)
		require.NoError(t, err)
		return inc
	}

	t.Run("更新のたびに担当者が付け替わる", func(t *testing.T) {
		inc := newIncident(t)
		first := uuid.New()
		second := uuid.New()

		require.NoError(t, inc.UpdateStatus(incident.StatusInProgress, first, now.Add(10*time.Minute)))
		assert.Equal(t, first, *inc.AssigneeID())

		require.NoError(t, inc.UpdateStatus(incident.StatusResolved, second, now.Add(20*time.Minute)))
		assert.Equal(t, second, *inc.AssigneeID())
		assert.Equal(t, now.Add(20*time.Minute), inc.UpdatedAt())
	})

	t.Run("無効なステータスNG", func(t *testing.T) {
		inc := newIncident(t)
		err := inc.UpdateStatus(incident.Status("reopened"), uuid.New(), now)
		require.ErrorIs(t, err, incident.ErrInvalidStatus)
	})

	t.Run("クローズで解決時間が分単位で入る", func(t *testing.T) {
		inc := newIncident(t)

		require.NoError(t, inc.UpdateStatus(incident.StatusClosed, uuid.New(), now.Add(90*time.Minute)))
		require.NotNil(t, inc.ResolutionTime())
		assert.EqualValues(t, 90, *inc.ResolutionTime())
	})

	t.Run("解決時間は最近接の分に丸める", func(t *testing.T) {
		inc := newIncident(t)

		require.NoError(t, inc.UpdateStatus(incident.StatusClosed, uuid.New(), now.Add(90*time.Minute+40*time.Second)))
		assert.EqualValues(t, 91, *inc.ResolutionTime())
	})

	t.Run("再クローズは新しい時刻で再計算する", func(t *testing.T) {
		inc := newIncident(t)
		actor := uuid.New()

		require.NoError(t, inc.UpdateStatus(incident.StatusClosed, actor, now.Add(60*time.Minute)))
		assert.EqualValues(t, 60, *inc.ResolutionTime())

		require.NoError(t, inc.UpdateStatus(incident.StatusClosed, actor, now.Add(120*time.Minute)))
		assert.EqualValues(t, 120, *inc.ResolutionTime())
	})

	t.Run("クローズ以外では解決時間は入らない", func(t *testing.T) {
		inc := newIncident(t)

		require.NoError(t, inc.UpdateStatus(incident.StatusResolved, uuid.New(), now.Add(30*time.Minute)))
		assert.Nil(t, inc.ResolutionTime())
	})
}
