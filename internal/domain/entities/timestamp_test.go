//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitsync/internal/domain/entities"
)

func TestCommitMessage(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, time.March, 4, 21, 5, 9, 0, time.FixedZone("BRT", -3*60*60))

	t.Run("should render the timestamp in UTC", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.FormatTimestamp(instant)

		// then
		assert.Equal(t, "UTC 2026-03-05 00:05:09", result)
	})

	t.Run("should build a plain commit message", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.CommitMessage(instant, "")

		// then
		assert.Equal(t, "Commit UTC 2026-03-05 00:05:09", result)
	})

	t.Run("should append the system name for device commits", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.CommitMessage(instant, entities.SystemTermux)

		// then
		assert.Equal(t, "Commit UTC 2026-03-05 00:05:09 (Android (Termux))", result)
	})
}
