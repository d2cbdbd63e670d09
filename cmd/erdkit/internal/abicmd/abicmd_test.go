package abicmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flipperDefinition = `{
	"name": "flipper",
	"endpoints": [
		{
			"name": "flip",
			"inputs": [
				{"name": "state", "type": "bool"},
				{"name": "note", "type": "string"}
			],
			"outputs": []
		}
	]
}`

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flipper.abi.json")
	require.NoError(t, os.WriteFile(path, []byte(flipperDefinition), 0o644))
	return path
}

func TestNativeArgs(t *testing.T) {
	t.Parallel()

	endpoint, err := loadEndpoint(writeDefinition(t), "flip")
	require.NoError(t, err)

	native, err := nativeArgs(endpoint, []string{"true", "hello"})
	require.NoError(t, err)
	assert.Equal(t, []any{true, "hello"}, native)

	_, err = nativeArgs(endpoint, []string{"maybe", "hello"})
	require.Error(t, err)
}

func TestLoadEndpoint_Unknown(t *testing.T) {
	t.Parallel()

	_, err := loadEndpoint(writeDefinition(t), "missing")
	require.ErrorContains(t, err, "not found")
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"parse", "MultiResultVec<MultiResult<i32,bytes>>"})

	require.NoError(t, cmd.Execute())
}
