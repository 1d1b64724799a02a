package pg

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage"
	"github.com/DjordjeVuckovic/genai-lab/internal/storage/storagetest"
	pkgtesting "github.com/DjordjeVuckovic/genai-lab/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *Store
)

func TestMain(m *testing.M) {
	if !pkgtesting.IntegrationEnabled(pkgtesting.PGIntegration) {
		os.Exit(0)
	}
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "genai_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	testStore = NewStore(testPool)
	if err := testStore.EnsureSchema(testCtx); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE documents")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func seed(t *testing.T) {
	t.Helper()
	_, err := testStore.Add(testCtx, []storage.Document{
		{ID: "a", Content: "alpha", Embedding: []float32{1, 0, 0}, Metadata: map[string]string{"source": "x.md"}},
		{ID: "b", Content: "beta", Embedding: []float32{0.9, 0.1, 0}, Metadata: map[string]string{"source": "y.md"}},
		{ID: "c", Content: "gamma", Embedding: []float32{0, 1, 0}, Metadata: map[string]string{"source": "x.md"}},
	})
	require.NoError(t, err)
}

func TestStore_Search(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)
	seed(t)

	hits, err := testStore.Search(testCtx, storage.SearchRequest{Vector: []float32{1, 0, 0}, TopK: 2})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].Document.ID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-6)
	assert.Equal(t, "b", hits[1].Document.ID)
	assert.Equal(t, []float32{1, 0, 0}, hits[0].Document.Embedding)

	hits, err = testStore.Search(testCtx, storage.SearchRequest{
		Vector: []float32{1, 0, 0},
		TopK:   10,
		Filter: map[string]string{"source": "x.md"},
	})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "c", hits[1].Document.ID)

	hits, err = testStore.Search(testCtx, storage.SearchRequest{Vector: []float32{1, 0, 0}, TopK: 10, Threshold: 0.5})
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestStore_Upsert(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)
	seed(t)

	_, err := testStore.Add(testCtx, []storage.Document{{ID: "a", Content: "alpha v2", Embedding: []float32{0, 0, 1}}})
	require.NoError(t, err)

	doc, err := testStore.Get(testCtx, "a")
	require.NoError(t, err)
	assert.Equal(t, "alpha v2", doc.Content)
	assert.Nil(t, doc.Metadata)

	n, err := testStore.Count(testCtx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStore_DeleteAndList(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)
	seed(t)

	var nf *apperr.NotFoundError
	require.NoError(t, testStore.Delete(testCtx, "b"))
	assert.True(t, errors.As(testStore.Delete(testCtx, "b"), &nf))
	_, err := testStore.Get(testCtx, "missing")
	assert.True(t, errors.As(err, &nf))

	docs, err := testStore.List(testCtx, 0, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID)

	docs, err = testStore.List(testCtx, 1, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].ID)

	removed, err := testStore.DeleteWhere(testCtx, map[string]string{"source": "x.md"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestHealthChecker(t *testing.T) {
	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
	assert.False(t, NewHealthChecker(nil).Healthy(testCtx))
}

func TestStore_SearchThreshold(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	storagetest.RunThresholdCases(t, testStore)
}
