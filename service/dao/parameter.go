package dao

// Parameter is a simple name/value list filter.
type Parameter struct {
	Name  string
	Value interface{}
}

// NewParameter creates a filter parameter; multiple values match any of
// them.
func NewParameter(name string, values ...string) *Parameter {
	if len(values) == 1 {
		return &Parameter{Name: name, Value: values[0]}
	}
	return &Parameter{Name: name, Value: values}
}
