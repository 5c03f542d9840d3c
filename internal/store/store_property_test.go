package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gitlab.com/pennywise/pennywise/internal/database"
	"gitlab.com/pennywise/pennywise/internal/models"
	"gitlab.com/pennywise/pennywise/internal/storage"
	"pgregory.net/rapid"
)

// TestStoreDeleteIdempotentProperty runs random add/delete sequences and
// checks that repeating a delete never changes state, and that the
// persisted partition matches the in-memory list after every operation.
func TestStoreDeleteIdempotentProperty(t *testing.T) {
	db := database.TestDB(t)
	gateway := storage.NewGateway(db)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		s := New(gateway)
		require.NoError(rt, gateway.DeleteExpensesFor(ctx, "u1"))
		s.Load(ctx, "u1")

		ids := []string{}
		ops := rapid.IntRange(1, 30).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			if len(ids) == 0 || rapid.Bool().Draw(rt, fmt.Sprintf("add%d", i)) {
				id := fmt.Sprintf("e%d", i)
				e := &models.Expense{
					ID:        id,
					Title:     "Entry",
					Amount:    decimal.New(rapid.Int64Range(0, 10_000).Draw(rt, fmt.Sprintf("cents%d", i)), -2),
					Category:  rapid.SampledFrom(models.Categories).Draw(rt, fmt.Sprintf("cat%d", i)),
					Date:      models.NewDate(2024, time.March, 1),
					UserID:    "u1",
					CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
				}
				require.NoError(rt, s.Add(ctx, e, "u1"))
				ids = append(ids, id)
			} else {
				idx := rapid.IntRange(0, len(ids)-1).Draw(rt, fmt.Sprintf("del%d", i))
				id := ids[idx]
				require.NoError(rt, s.Delete(ctx, id, "u1"))
				after := s.List()
				// Deleting again must leave both memory and storage untouched.
				require.NoError(rt, s.Delete(ctx, id, "u1"))
				require.Equal(rt, after, s.List())
				ids = append(ids[:idx], ids[idx+1:]...)
			}

			mem := s.List()
			persisted := gateway.ReadExpenses(ctx, "u1")
			require.Len(rt, persisted, len(mem))
			for j := range mem {
				require.Equal(rt, mem[j].ID, persisted[j].ID)
			}
		}
	})
}
