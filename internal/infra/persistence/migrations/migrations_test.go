package migrations

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_IsMigrateSourceDriver(t *testing.T) {
	var src source.Driver
	src, err := Source()
	require.NoError(t, err)
	require.NotNil(t, src)
	assert.NoError(t, src.Close())
}

func TestSource_WalksVersionsInOrder(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	first, err := src.First()
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	versions := []uint{first}
	for current := first; ; {
		next, err := src.Next(current)
		if err != nil {
			assert.ErrorIs(t, err, fs.ErrNotExist)

			break
		}
		versions = append(versions, next)
		current = next
	}

	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, versions)
}

func TestSource_EveryUpHasDown(t *testing.T) {
	ups, err := fs.Glob(files, "sql/*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(files, down)
		assert.NoError(t, err, "missing %s", down)
	}
}

func TestSource_NamesAndOwnerFieldsMigration(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	r, identifier, err := src.ReadUp(4)
	require.NoError(t, err)
	defer r.Close()

	body, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, "add_owner_names_and_breed", identifier)
	assert.Contains(t, string(body), "first_name")
	assert.Contains(t, string(body), "breed")
}
