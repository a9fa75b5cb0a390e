package dataset

import (
	"bikeshare/utils"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table trips of a city. Every operation that changes the rows or the columns returns a new Table,
// the receiver is never modified
type Table struct {
	frame dataframe.DataFrame
}

func NewTable(frame dataframe.DataFrame) *Table {
	return &Table{frame: frame}
}

func (t *Table) Nrow() int {
	return t.frame.Nrow()
}

func (t *Table) HasColumn(name string) bool {
	return utils.ContainsString(name, t.frame.Names())
}

// Column returns the column with the given name. ErrMissingColumn is returned if the table does not have it
func (t *Table) Column(name string) (series.Series, error) {
	if !t.HasColumn(name) {
		return series.Series{}, fmt.Errorf("%q: %w", name, ErrMissingColumn)
	}
	return t.frame.Col(name), nil
}

// OptionalColumn returns the column with the given name, or an empty Optional if the table does not have it
func (t *Table) OptionalColumn(name string) utils.Optional[series.Series] {
	column, err := t.Column(name)
	if err != nil {
		return utils.None[series.Series]()
	}
	return utils.Some(column)
}

// Strings returns the values of the column as strings
func (t *Table) Strings(name string) ([]string, error) {
	column, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return column.Records(), nil
}

// Floats returns the values of the column as float64. Missing values are NaN
func (t *Table) Floats(name string) ([]float64, error) {
	column, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return column.Float(), nil
}

func (t *Table) Ints(name string) ([]int, error) {
	column, err := t.Column(name)
	if err != nil {
		return nil, err
	}

	values, err := column.Int()
	if err != nil {
		return nil, fmt.Errorf("%q: %s: %w", name, err.Error(), ErrInvalidColumn)
	}
	return values, nil
}

// WithColumn returns a new Table with the given column added, or replaced if a column with the same name exists
func (t *Table) WithColumn(column series.Series) (*Table, error) {
	frame := t.frame.Mutate(column)
	if frame.Err != nil {
		return nil, fmt.Errorf("%q: %s: %w", column.Name, frame.Err.Error(), ErrInvalidColumn)
	}
	return NewTable(frame), nil
}

// Where returns a new Table with the rows in which the column is equal to value
func (t *Table) Where(name string, value interface{}) (*Table, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
	}

	frame := t.frame.Filter(dataframe.F{
		Colname:    name,
		Comparator: series.Eq,
		Comparando: value,
	})
	if frame.Err != nil {
		return nil, fmt.Errorf("error filtering by %q: %w", name, frame.Err)
	}
	return NewTable(frame), nil
}
