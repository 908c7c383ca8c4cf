package utils

import (
	"reflect"
)

// ColumnList builds the select column list of a db model struct from its
// `db` tags, embedded structs included.
func ColumnList[DBModel any]() []string {
	var dbModel DBModel
	return columnsOfType(reflect.TypeOf(dbModel))
}

func columnsOfType(t reflect.Type) []string {
	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			columns = append(columns, columnsOfType(field.Type)...)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}
