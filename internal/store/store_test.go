package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turagency/backoffice/internal/models"
)

func newTestStore(t *testing.T) *Store {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestMissingFileIsEmptyCollection(t *testing.T) {
	s := newTestStore(t)

	orders, err := s.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestEmptyFileIsEmptyCollection(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "orders.json"), []byte("  \n"), 0o644))

	orders, err := s.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCollectionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	saved := []models.Order{
		{ID: "1", SatisNo: "1001", Satish: models.Money{Amount: 500, Currency: models.CurrencyAZN}},
		{ID: "2", SatisNo: "1002", Satish: models.Money{Amount: 300, Currency: models.CurrencyUSD}},
	}
	require.NoError(t, s.SaveAllOrders(saved))

	loaded, err := s.GetOrders()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveNilPersistsEmptyArray(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveAllPartners(nil))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "partners.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCorruptFileReportsStorageError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "cars.json"), []byte("{not json"), 0o644))

	_, err := s.GetCars()
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCapitalDefaultsToZeroAZN(t *testing.T) {
	s := newTestStore(t)

	capital, err := s.GetCapital()
	require.NoError(t, err)
	assert.Equal(t, models.Capital{Amount: 0, Currency: models.CurrencyAZN}, capital)
}

func TestCapitalRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveCapital(models.Capital{Amount: 2500, Currency: models.CurrencyUSD}))

	capital, err := s.GetCapital()
	require.NoError(t, err)
	assert.Equal(t, models.Capital{Amount: 2500, Currency: models.CurrencyUSD}, capital)
}
