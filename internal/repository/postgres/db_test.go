package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithQueryTimeout(t *testing.T) {
	t.Run("attaches default deadline", func(t *testing.T) {
		db := NewDBForTest(nil, nil)

		ctx, cancel := db.withQueryTimeout(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok, "store context must carry a deadline")
		assert.WithinDuration(t, time.Now().Add(defaultQueryTimeout), deadline, time.Second)
	})

	t.Run("keeps tighter caller deadline", func(t *testing.T) {
		db := NewDBForTest(nil, nil)

		parent, parentCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer parentCancel()

		ctx, cancel := db.withQueryTimeout(parent)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		parentDeadline, _ := parent.Deadline()
		assert.Equal(t, parentDeadline, deadline)
	})
}
