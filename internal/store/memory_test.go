package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drewxgarcia/wordle-solver/internal/game"
	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	secret := words.MustParse("arise")
	sess, err := session.NewFromWords([]words.Word{secret, words.MustParse("raise")})
	require.NoError(t, err)
	return game.New(sess, secret)
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := newTestGame(t)

	require.NoError(t, st.Save(ctx, g))
	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestGetMissing(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	g := newTestGame(t)

	require.NoError(t, st.Save(ctx, g))
	require.NoError(t, st.Delete(ctx, g.ID))
	_, err := st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent ID stays a no-op.
	assert.NoError(t, st.Delete(ctx, g.ID))
}
