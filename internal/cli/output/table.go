package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an aligned table.
type TableFormatter struct {
	// Wide includes fields tagged `table:"wide"`.
	Wide bool
}

// Format renders a struct as FIELD/VALUE rows and a slice of structs as one
// row per element. Anything else is printed with %v.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	v := reflect.Indirect(reflect.ValueOf(data))
	switch v.Kind() {
	case reflect.Struct:
		return f.structTable(v).render(w)
	case reflect.Slice, reflect.Array:
		return f.sliceTable(v).render(w)
	default:
		_, err := fmt.Fprintf(w, "%v\n", data)
		return err
	}
}

// column is an exported struct field selected for display.
type column struct {
	index int
	name  string
}

func (f *TableFormatter) columns(t reflect.Type) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("table")
		if tag == "-" || (tag == "wide" && !f.Wide) {
			continue
		}
		cols = append(cols, column{index: i, name: fieldName(field)})
	}
	return cols
}

func (f *TableFormatter) structTable(v reflect.Value) *grid {
	g := &grid{headers: []string{"FIELD", "VALUE"}}
	for _, c := range f.columns(v.Type()) {
		g.addRow(c.name, formatValue(v.Field(c.index)))
	}
	return g
}

func (f *TableFormatter) sliceTable(v reflect.Value) *grid {
	g := &grid{}
	if v.Len() == 0 {
		return g
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		g.headers = []string{"VALUE"}
		for i := 0; i < v.Len(); i++ {
			g.addRow(formatValue(v.Index(i)))
		}
		return g
	}

	cols := f.columns(elemType)
	for _, c := range cols {
		g.headers = append(g.headers, strings.ToUpper(c.name))
	}
	for i := 0; i < v.Len(); i++ {
		elem := reflect.Indirect(v.Index(i))
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			if !elem.IsValid() {
				row = append(row, "-")
				continue
			}
			row = append(row, formatValue(elem.Field(c.index)))
		}
		g.addRow(row...)
	}
	return g
}

// fieldName is the json tag name, or the Go name in snake_case.
func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return toSnakeCase(f.Name)
}

// formatValue formats a reflect.Value for display.
func formatValue(v reflect.Value) string {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) {
		if v.IsNil() {
			return "-"
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return "-"
	}

	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return "-"
		}
		return v.String()
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// toSnakeCase converts CamelCase to snake_case.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// grid is a header row plus cells, aligned with tabwriter.
type grid struct {
	headers []string
	rows    [][]string
}

func (g *grid) addRow(cells ...string) {
	g.rows = append(g.rows, cells)
}

func (g *grid) render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(g.headers) > 0 {
		fmt.Fprintln(tw, strings.Join(g.headers, "\t"))
	}
	for _, row := range g.rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
