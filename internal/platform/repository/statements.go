package repository

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// statements holds the SQL generated once per repository.
type statements struct {
	selectList string
	from       string
	list       string
	get        string
	insert     string
	update     string
	delete     string
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func buildStatements(table string, columns []string) statements {
	quotedTable := quote(table)

	selected := make([]string, 0, len(columns)+1)
	selected = append(selected, "id")
	placeholders := make([]string, 0, len(columns))
	assignments := make([]string, 0, len(columns))
	for i, col := range columns {
		q := quote(col)
		selected = append(selected, q)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		// $1 is the id in UPDATE statements.
		assignments = append(assignments, fmt.Sprintf("%s = $%d", q, i+2))
	}
	selectList := strings.Join(selected, ", ")

	return statements{
		selectList: selectList,
		from:       quotedTable,
		list:       fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectList, quotedTable),
		get:        fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectList, quotedTable),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			quotedTable, strings.Join(selected[1:], ", "), strings.Join(placeholders, ", "), selectList),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
			quotedTable, strings.Join(assignments, ", "), selectList),
		delete: fmt.Sprintf("DELETE FROM %s WHERE id = $1", quotedTable),
	}
}

func (s statements) listBy(column string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY id", s.selectList, s.from, quote(column))
}
