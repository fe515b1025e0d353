package formula

import "fmt"

// UndeclaredParameter is returned by Compile when expr references a named
// variable that does not appear in the paramNames the Callable is declared
// over.
type UndeclaredParameter struct {
	Name string
}

func (e *UndeclaredParameter) Error() string {
	return fmt.Sprintf("formula: expression references undeclared parameter %q", e.Name)
}
