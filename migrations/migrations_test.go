package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scaledNumeric = regexp.MustCompile(`(?i)numeric\s*\(`)

// Figures are computed without rounding, so no money column may cap scale.
func TestMigrations_NumericColumnsAreUnconstrained(t *testing.T) {
	files, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		data, err := FS.ReadFile(name)
		require.NoError(t, err)
		assert.False(t, scaledNumeric.Match(data), "%s declares NUMERIC with precision or scale", name)
	}
}

func TestMigrations_Paired(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := FS.ReadFile(down)
		assert.NoError(t, err, "missing %s", down)
	}
}
