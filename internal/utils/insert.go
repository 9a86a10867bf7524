package querybuilder

type InsertRows [][]interface{} // multiple Rows

// Assignment is one `column = value` pair of an UPDATE
type Assignment struct {
	Column string
	Value  interface{}
}

// UpdateData keeps assignments in order so the rendered SQL is stable
type UpdateData []Assignment

// Raw is written into the statement as is, e.g. Raw("revision + 1")
type Raw string

func Set(column string, value interface{}) Assignment {
	return Assignment{Column: column, Value: value}
}
