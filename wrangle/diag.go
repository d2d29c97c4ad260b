package wrangle

import "fmt"

// Diagnostic reports an operand no naming rule could handle. Generation
// goes on with the Fallback name.
type Diagnostic struct {
	OpName   string
	Position int
	Operand  Operand
	Fallback string
}

type Diagnostics []Diagnostic

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: unmanaged argument name: kind=%s name=%q quantifier=%q, using %s",
		d.OpName, d.Operand.Kind, d.Operand.Name, d.Operand.Quantifier, d.Fallback)
}

func (ds *Diagnostics) add(d Diagnostic) {
	*ds = append(*ds, d)
}
