package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqbalNugrahaa/HappiestStore/internal/logging"
	"github.com/IqbalNugrahaa/HappiestStore/internal/parsererror"
)

const productCSV = `Name,Type,Price
Netflix Sharing 1 Bulan,sharing,30k
Capcut Private 1 Bulan,PRIVATE,"Rp25.000"
,sharing,1000
Spotify,UNKNOWN,0
Short,row
`

func TestLoader_ReadCSV(t *testing.T) {
	logger := logging.NewMockLogger()
	loader := NewLoader(logger)

	result, err := loader.ReadCSV(strings.NewReader(productCSV), "products.csv")
	require.NoError(t, err)

	require.Len(t, result.Catalog, 2)
	netflix := result.Catalog[0]
	assert.Equal(t, "Netflix Sharing 1 Bulan", netflix.Name)
	assert.Equal(t, "SHARING", netflix.Type)
	assert.True(t, decimal.NewFromInt(30000).Equal(netflix.Price))
	assert.Equal(t, ProductID("Netflix Sharing 1 Bulan", "SHARING"), netflix.ID)
	assert.Len(t, netflix.ID, 36)

	capcut := result.Catalog[1]
	assert.Equal(t, "PRIVATE", capcut.Type)
	assert.True(t, decimal.NewFromInt(25000).Equal(capcut.Price))

	require.Len(t, result.Rejected, 3)
	assert.Equal(t, 4, result.Rejected[0].Row)
	assert.Equal(t, []string{"Product name is required"}, result.Rejected[0].Reasons)
	assert.Equal(t, 5, result.Rejected[1].Row)
	assert.Equal(t, "Spotify", result.Rejected[1].Name)
	assert.Equal(t, []string{"Invalid product type: UNKNOWN", "Price must be a positive number"}, result.Rejected[1].Reasons)
	assert.Equal(t, 6, result.Rejected[2].Row)
	assert.Equal(t, []string{"Invalid CSV format. Expected: name,type,price"}, result.Rejected[2].Reasons)

	assert.Len(t, logger.GetEntriesByLevel("WARN"), 3)
	assert.True(t, logger.HasEntry("INFO", "Catalog loaded"))
}

func TestLoader_ReadCSV_Variants(t *testing.T) {
	loader := NewLoader(nil)

	t.Run("uppercase header with id column", func(t *testing.T) {
		result, err := loader.ReadCSV(strings.NewReader("ID,NAME,TYPE,PRICE\r\nabc,Netflix,,1000\r\n"), "x.csv")
		require.NoError(t, err)
		require.Len(t, result.Catalog, 1)
		assert.Equal(t, "abc", result.Catalog[0].ID)
		assert.Equal(t, "", result.Catalog[0].Type)
		assert.Empty(t, result.Rejected)
	})

	t.Run("no header", func(t *testing.T) {
		result, err := loader.ReadCSV(strings.NewReader("Netflix,SHARING 4U,30000\nSpotify,MUSIC,20000\n"), "x.csv")
		require.NoError(t, err)
		require.Len(t, result.Catalog, 2)
		assert.Equal(t, "Netflix", result.Catalog[0].Name)
		assert.Equal(t, "SHARING 4U", result.Catalog[0].Type)
	})

	t.Run("empty file", func(t *testing.T) {
		result, err := loader.ReadCSV(strings.NewReader("\n"), "x.csv")
		require.NoError(t, err)
		assert.Empty(t, result.Catalog)
	})

	t.Run("byte order mark", func(t *testing.T) {
		result, err := loader.ReadCSV(strings.NewReader("\uFEFFName,Type,Price\nNetflix,,5000\n"), "x.csv")
		require.NoError(t, err)
		assert.Len(t, result.Catalog, 1)
	})
}

const catalogYAML = `products:
  - id: p1
    name: CAPCUT PRIVATE 1 BULAN
    price: 25000
    type: private
  - name: NETFLIX SHARING 4U
    price: 30000
  - name: ""
    price: 1
  - name: Bad
    price: -5
`

func TestLoader_ReadYAML(t *testing.T) {
	loader := NewLoader(nil)

	result, err := loader.ReadYAML([]byte(catalogYAML), "catalog.yaml")
	require.NoError(t, err)

	require.Len(t, result.Catalog, 2)
	assert.Equal(t, "p1", result.Catalog[0].ID)
	assert.Equal(t, "PRIVATE", result.Catalog[0].Type)
	assert.True(t, decimal.NewFromInt(25000).Equal(result.Catalog[0].Price))
	assert.Equal(t, ProductID("NETFLIX SHARING 4U", ""), result.Catalog[1].ID)

	require.Len(t, result.Rejected, 2)
	assert.Equal(t, 3, result.Rejected[0].Row)
	assert.Equal(t, []string{"Product name is required"}, result.Rejected[0].Reasons)
	assert.Equal(t, []string{"Price must not be negative"}, result.Rejected[1].Reasons)
}

func TestLoader_ReadYAML_BareList(t *testing.T) {
	result, err := NewLoader(nil).ReadYAML([]byte("- name: Spotify\n  price: 20000\n"), "list.yaml")
	require.NoError(t, err)
	require.Len(t, result.Catalog, 1)
	assert.Equal(t, "Spotify", result.Catalog[0].Name)
}

func TestLoader_ReadYAML_Invalid(t *testing.T) {
	_, err := NewLoader(nil).ReadYAML([]byte("products: {"), "bad.yaml")
	assert.Error(t, err)
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(nil)

	yamlPath := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(catalogYAML), 0o600))
	result, err := loader.LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, result.Catalog, 2)
	assert.Equal(t, yamlPath, result.Source)

	csvPath := filepath.Join(dir, "products.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte(productCSV), 0o600))
	result, err = loader.LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, result.Catalog, 2)

	txtPath := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x"), 0o600))
	_, err = loader.LoadFile(txtPath)
	var formatErr *parsererror.InvalidFormatError
	assert.True(t, errors.As(err, &formatErr))

	_, err = loader.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestProductID_Stable(t *testing.T) {
	assert.Equal(t, ProductID("Netflix", "SHARING"), ProductID(" NETFLIX ", "SHARING"))
	assert.NotEqual(t, ProductID("Netflix", "SHARING"), ProductID("Netflix", "PRIVATE"))
}
