package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_TurnOrderPreserved(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.InsertChatTurn(ctx, "u1", "user", "q1"))
	require.NoError(t, s.InsertChatTurn(ctx, "u1", "assistant", "a1"))
	require.NoError(t, s.InsertChatTurn(ctx, "u2", "user", "other"))
	require.NoError(t, s.InsertChatTurn(ctx, "u1", "user", "q2"))

	turns, err := s.ListChatTurns(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	require.Equal(t, "q1", turns[0].Content)
	require.Equal(t, "a1", turns[1].Content)
	require.Equal(t, "q2", turns[2].Content)
}

func TestMemoryStore_ListLimitKeepsMostRecent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		require.NoError(t, s.InsertChatTurn(ctx, "u1", "user", fmt.Sprintf("m%d", i)))
	}
	turns, err := s.ListChatTurns(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, turns, 3)
	require.Equal(t, "m7", turns[0].Content)
	require.Equal(t, "m9", turns[2].Content)
}

func TestMemoryStore_Diagnoses(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.InsertDiagnosis(ctx, "u1", "scenario", []byte(`{"summary":"x"}`)))
	recs := s.Diagnoses("u1")
	require.Len(t, recs, 1)
	require.Equal(t, "scenario", recs[0].Scenario)
	require.JSONEq(t, `{"summary":"x"}`, string(recs[0].Diagnosis))
}
