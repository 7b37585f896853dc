package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo() *BaseCatalogRepo[any] {
	return NewBaseCatalogRepo[any](nil, "test_table",
		[]string{"id", "deletion_mark", "version", "code", "name"},
		func() any { return nil })
}

func TestParseOrderBy(t *testing.T) {
	repo := testRepo()

	tests := []struct {
		in   string
		want string
	}{
		{"", "name ASC"},
		{"name", "name ASC"},
		{"+code", "code ASC"},
		{"-name", "name DESC"},
		{"-created_at", "created_at DESC"},
		{"updated_at", "updated_at ASC"},
	}

	for _, tt := range tests {
		got, err := repo.parseOrderBy(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseOrderBy_RejectsUnknownColumn(t *testing.T) {
	repo := testRepo()

	_, err := repo.parseOrderBy("tax_id; DROP TABLE test_table")
	assert.Error(t, err)

	_, err = repo.parseOrderBy("unknown_col")
	assert.Error(t, err)
}

func TestBaseSelect_SQL(t *testing.T) {
	repo := testRepo()

	sql, args, err := repo.baseSelect().Where("id = ?", "x").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, deletion_mark, version, code, name FROM test_table WHERE id = $1", sql)
	assert.Len(t, args, 1)
}
