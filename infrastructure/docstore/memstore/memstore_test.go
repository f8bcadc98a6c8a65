package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
)

func receive(t *testing.T, ch <-chan *docstore.Document) *docstore.Document {
	t.Helper()
	select {
	case doc := <-ch:
		return doc
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot não recebido a tempo")
		return nil
	}
}

func decode(t *testing.T, doc *docstore.Document) map[string]any {
	t.Helper()
	require.NotNil(t, doc)
	var fields map[string]any
	require.NoError(t, jsoniter.Unmarshal(doc.Data, &fields))
	return fields
}

func TestStore_OnSnapshot_DeliversCurrentStateThenChangesInOrder(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	ch := make(chan *docstore.Document, 16)
	unsubscribe, err := store.OnSnapshot(ctx, "sales", "main", func(doc *docstore.Document) {
		ch <- doc
	})
	require.NoError(t, err)
	defer unsubscribe()

	// Documento inexistente entrega nil
	assert.Nil(t, receive(t, ch))

	for i := 1; i <= 5; i++ {
		require.NoError(t, store.UpdateDoc(ctx, "sales", "main", map[string]any{"counter": i}))
	}

	for i := 1; i <= 5; i++ {
		fields := decode(t, receive(t, ch))
		assert.Equal(t, float64(i), fields["counter"])
	}
}

func TestStore_UpdateDoc_MergesTopLevelFields(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	require.NoError(t, store.Seed("dashboard", "main", map[string]any{"balance": 10, "balanceChange": 2.5}))
	require.NoError(t, store.UpdateDoc(ctx, "dashboard", "main", map[string]any{"balance": 20}))

	doc, err := store.GetDoc(ctx, "dashboard", "main")
	require.NoError(t, err)

	fields := decode(t, doc)
	assert.Equal(t, float64(20), fields["balance"])
	assert.Equal(t, 2.5, fields["balanceChange"])
}

func TestStore_ArrayAppend_ConcurrentAppendsArePreserved(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.ArrayAppend(ctx, "notifications", "main", "notifications", map[string]any{"details": i}))
		}(i)
	}
	wg.Wait()

	doc, err := store.GetDoc(ctx, "notifications", "main")
	require.NoError(t, err)

	list, ok := decode(t, doc)["notifications"].([]any)
	require.True(t, ok)
	assert.Len(t, list, writers)
}

func TestStore_ArrayAppend_EmptyField(t *testing.T) {
	store := New()
	defer store.Close()

	err := store.ArrayAppend(context.Background(), "notifications", "main", "", "x")
	assert.ErrorIs(t, err, docstore.ErrEmptyField)
}

func TestStore_Unsubscribe_StopsDelivery(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	ch := make(chan *docstore.Document, 16)
	unsubscribe, err := store.OnSnapshot(ctx, "sales", "main", func(doc *docstore.Document) {
		ch <- doc
	})
	require.NoError(t, err)
	receive(t, ch)

	unsubscribe()
	unsubscribe() // idempotente

	require.NoError(t, store.UpdateDoc(ctx, "sales", "main", map[string]any{"orders": []any{}}))

	select {
	case doc := <-ch:
		t.Fatalf("snapshot inesperado após unsubscribe: %v", doc)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStore_Delete_DeliversNil(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	require.NoError(t, store.Seed("sales", "main", map[string]any{"orders": []any{}}))

	ch := make(chan *docstore.Document, 16)
	unsubscribe, err := store.OnSnapshot(ctx, "sales", "main", func(doc *docstore.Document) {
		ch <- doc
	})
	require.NoError(t, err)
	defer unsubscribe()

	assert.NotNil(t, receive(t, ch))

	store.Delete("sales", "main")
	assert.Nil(t, receive(t, ch))
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := New()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	_, err := store.GetDoc(ctx, "sales", "main")
	assert.ErrorIs(t, err, docstore.ErrClosed)

	_, err = store.OnSnapshot(ctx, "sales", "main", func(*docstore.Document) {})
	assert.ErrorIs(t, err, docstore.ErrClosed)

	assert.ErrorIs(t, store.UpdateDoc(ctx, "sales", "main", nil), docstore.ErrClosed)
}
