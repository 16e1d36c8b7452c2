package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-tracker/internal/domain"
	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
	"github.com/jhoicas/stock-tracker/internal/infrastructure/jsonfile"
)

func sample(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.FromItems([]inventory.Item{
		{Name: "apple", Quantity: 7},
		{Name: "banana", Quantity: 5},
	})
	require.NoError(t, err)
	return inv
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	inv := sample(t)

	require.NoError(t, jsonfile.SaveData(inv, path))
	got, err := jsonfile.LoadData(path)
	require.NoError(t, err)

	assert.Equal(t, inv.Items(), got.Items())
}

func TestSaveData_IndentacionDosEspacios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, jsonfile.SaveData(sample(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"apple\": 7,\n  \"banana\": 5\n}", string(data))
}

func TestSaveData_SobrescribeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"old": 1, "other": 2, "padding": 3}`), 0o644))

	require.NoError(t, jsonfile.SaveData(inventory.New(), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestSaveData_ErrorDeEscritura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-existe", "inventory.json")
	err := jsonfile.SaveData(sample(t), path)
	assert.ErrorIs(t, err, domain.ErrPersist)
}

func TestLoadData_ArchivoAusente(t *testing.T) {
	inv, err := jsonfile.LoadData(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Len())
}

func TestLoadData_JSONInvalido(t *testing.T) {
	for _, content := range []string{`{not json`, `{"a": 1} trailing`, `{"a": -3}`, ``} {
		path := filepath.Join(t.TempDir(), "inventory.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		inv, err := jsonfile.LoadData(path)
		assert.ErrorIs(t, err, domain.ErrMalformedData, content)
		require.NotNil(t, inv)
		assert.Equal(t, 0, inv.Len(), content)
	}
}

func TestLoadData_RutaIlegibleNoEsMalformada(t *testing.T) {
	dir := t.TempDir()

	inv, err := jsonfile.LoadData(dir)
	assert.ErrorIs(t, err, domain.ErrReadFailed)
	assert.NotErrorIs(t, err, domain.ErrMalformedData)
	assert.NotErrorIs(t, err, domain.ErrFileNotFound)
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Len())
}

func TestStore_UsaRutaPorDefecto(t *testing.T) {
	assert.Equal(t, jsonfile.DefaultPath, jsonfile.NewStore("").Path)

	path := filepath.Join(t.TempDir(), "s.json")
	s := jsonfile.NewStore(path)
	require.NoError(t, s.Save(context.Background(), sample(t)))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got.Qty("apple"))
}
