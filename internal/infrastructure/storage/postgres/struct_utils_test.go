package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freshstock/internal/core/entity"
	"freshstock/internal/core/id"
)

type mockCatalog struct {
	entity.Catalog
	TaxID  string `db:"tax_id" json:"taxId"`
	Hidden string `db:"-" json:"-"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expected := []string{"id", "deletion_mark", "version", "code", "name", "tax_id"}
	for _, col := range expected {
		assert.Contains(t, cols, col)
	}
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	cat := mockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      5,
			},
			Code: "TEST",
			Name: "Test Name",
		},
		TaxID:  "5401234567",
		Hidden: "not persisted",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, "5401234567", m["tax_id"])
	assert.NotContains(t, m, "-")
}

func TestExtractDBColumns_DocumentTimestamps(t *testing.T) {
	type mockDocument struct {
		entity.Document
		Note string `db:"note"`
	}

	cols := ExtractDBColumns[mockDocument]()
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "updated_at")
	assert.Contains(t, cols, "note")
}
