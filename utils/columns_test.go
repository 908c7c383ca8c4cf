package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnList(t *testing.T) {
	type embedded struct {
		Nested string `db:"nested"`
	}
	type model struct {
		Id      string `db:"id"`
		Skipped string `db:"-"`
		NoTag   string
		embedded
		Name string `db:"name"`
	}

	assert.Equal(t, []string{"id", "nested", "name"}, ColumnList[model]())
}
