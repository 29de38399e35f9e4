package seed

import (
	"fmt"
	"io"
	"strings"
)

// WriteSQL escribe un INSERT por fila (conservando los ids) y reajusta la secuencia de identidad.
func WriteSQL(w io.Writer, t Table, cols []string, rows []Row) error {
	if _, err := fmt.Fprintf(w, "\n-- %s\n", t.Name); err != nil {
		return err
	}
	for _, row := range rows {
		values := make([]string, 0, len(cols))
		for _, c := range cols {
			values = append(values, sqlValue(row[c], t.money[c]))
		}
		_, err := fmt.Fprintf(w, "INSERT INTO %s (%s) OVERRIDING SYSTEM VALUE VALUES (%s);\n",
			t.Name, strings.Join(cols, ", "), strings.Join(values, ", "))
		if err != nil {
			return err
		}
	}
	if hasColumn(cols, "id") && len(rows) > 0 {
		_, err := fmt.Fprintf(w, "SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s));\n", t.Name, t.Name)
		return err
	}
	return nil
}

func hasColumn(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}

func sqlValue(v string, money bool) string {
	switch {
	case v == "":
		return "NULL"
	case money:
		return v
	default:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
}
