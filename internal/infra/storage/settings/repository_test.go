package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGetQuery(t *testing.T) {
	query, args, err := buildGetQuery("string_service")
	require.NoError(t, err)

	assert.Equal(t, "SELECT document FROM scheduling_settings WHERE key = $1", query)
	assert.Equal(t, []interface{}{"string_service"}, args)
}

func TestBuildUpsertQuery(t *testing.T) {
	query, args, err := buildUpsertQuery("string_service", []byte(`{"capacity":2}`))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO scheduling_settings (key,document,updated_at) VALUES ($1,$2,NOW())")
	assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE")
	assert.Equal(t, []interface{}{"string_service", `{"capacity":2}`}, args)
}

func TestDecodeDocument(t *testing.T) {
	raw, err := decodeDocument([]byte(`{"capacity": 2, "businessDays": [1, 2]}`))
	require.NoError(t, err)
	assert.Equal(t, 2.0, raw["capacity"])
	assert.Equal(t, []interface{}{1.0, 2.0}, raw["businessDays"])

	raw, err = decodeDocument([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, raw)
	assert.Empty(t, raw)

	raw, err = decodeDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, raw)

	_, err = decodeDocument([]byte(`[1, 2]`))
	assert.Error(t, err)
}
