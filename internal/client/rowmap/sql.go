package rowmap

import "strings"

// Insert renders a parameterized INSERT for the payload's columns.
func (p Payload) Insert(table string) string {
	return p.statement("INSERT INTO", table)
}

// Replace renders a parameterized INSERT OR REPLACE for the payload's columns.
func (p Payload) Replace(table string) string {
	return p.statement("INSERT OR REPLACE INTO", table)
}

// Assignments renders "a = ?, b = ?" for an UPDATE in payload order.
func (p Payload) Assignments() string {
	parts := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		parts[i] = c + " = ?"
	}
	return strings.Join(parts, ", ")
}

func (p Payload) statement(verb, table string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(p.Columns)), ", ")
	return verb + " " + table + " (" + strings.Join(p.Columns, ", ") + ") VALUES (" + marks + ")"
}

// Select renders "SELECT cols FROM table".
func Select(table string, columns []string) string {
	return "SELECT " + strings.Join(columns, ", ") + " FROM " + table
}
