package wrangle

import (
	"strings"

	"github.com/dave/jennifer/jen"
	"tlog.app/go/errors"
)

// ErrResultTypeWithoutID is returned for an instruction that has a result
// type but no result id. The core grammar has no such instruction.
var ErrResultTypeWithoutID = errors.New("result type without result id")

// Target names the parts of the builder library the generated methods call.
type Target struct {
	// SpecPackage is the import path declaring the opcode and enum types.
	// Empty means they live in the generated package.
	SpecPackage string

	Receiver    string
	Module      string
	Instruction string

	NewInstruction string
	NewID          string
	AddOperand     string

	AddTypeDeclaration       string
	AddGlobalVariable        string
	AddToFunctionDefinitions string
}

var DefaultTarget = Target{
	Receiver:    "m",
	Module:      "Module",
	Instruction: "Instruction",

	NewInstruction: "NewInstruction",
	NewID:          "NewID",
	AddOperand:     "AddOperand",

	AddTypeDeclaration:       "AddTypeDeclaration",
	AddGlobalVariable:        "AddGlobalVariable",
	AddToFunctionDefinitions: "AddToFunctionDefinitions",
}

func (t Target) withDefaults() Target {
	def := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}

	def(&t.Receiver, DefaultTarget.Receiver)
	def(&t.Module, DefaultTarget.Module)
	def(&t.Instruction, DefaultTarget.Instruction)
	def(&t.NewInstruction, DefaultTarget.NewInstruction)
	def(&t.NewID, DefaultTarget.NewID)
	def(&t.AddOperand, DefaultTarget.AddOperand)
	def(&t.AddTypeDeclaration, DefaultTarget.AddTypeDeclaration)
	def(&t.AddGlobalVariable, DefaultTarget.AddGlobalVariable)
	def(&t.AddToFunctionDefinitions, DefaultTarget.AddToFunctionDefinitions)

	return t
}

// Registration is how a freshly built instruction is attached to the module.
type Registration int

const (
	RegisterNone Registration = iota
	RegisterTypeDeclaration
	RegisterGlobalVariable
	RegisterFunctionDefinition
)

// Registration picks the call that attaches the instruction to the module.
// Variable and Label are attached by their callers.
func (m *Method) Registration() Registration {
	switch {
	case m.Class == ClassTypeDeclaration:
		return RegisterTypeDeclaration
	case m.Class == ClassConstantCreation && strings.HasPrefix(m.Name, "Constant"):
		return RegisterGlobalVariable
	case m.Name == "Variable" || m.Name == "Label":
		return RegisterNone
	default:
		return RegisterFunctionDefinition
	}
}

// Construction is the shape of the constructor call.
type Construction int

const (
	ConstructOpcode Construction = iota
	ConstructWithID
	ConstructWithIDAndType
)

// Construction picks how the instruction is constructed. Type declarations
// and labels get their id when they are registered, so none is allocated
// here for them.
func (m *Method) Construction() (Construction, error) {
	_, hasType := m.ResultType()

	switch {
	case m.NeedsID && hasType:
		return ConstructWithIDAndType, nil
	case m.NeedsID && (m.Class == ClassTypeDeclaration || m.Name == "Label"):
		return ConstructOpcode, nil
	case m.NeedsID:
		return ConstructWithID, nil
	case hasType:
		return 0, errors.Wrap(ErrResultTypeWithoutID, "%v", m.Name)
	default:
		return ConstructOpcode, nil
	}
}

// Emitter renders Methods as Go methods on the builder's module type.
type Emitter struct {
	Target Target
}

func NewEmitter(t Target) *Emitter {
	return &Emitter{Target: t.withDefaults()}
}

// Method renders m with its doc comment.
func (e *Emitter) Method(m *Method) (*jen.Statement, error) {
	for _, arg := range m.Args {
		if arg.Name == e.Target.Receiver {
			return nil, errors.New("%v: argument %v shadows the receiver", m.Name, arg.Name)
		}
	}

	body, err := e.body(m)
	if err != nil {
		return nil, err
	}

	t := e.Target

	return jen.Commentf("%s creates an Op%s instruction.", m.Name, m.Name).Line().
		Func().Params(jen.Id(t.Receiver).Op("*").Id(t.Module)).
		Id(m.Name).Params(e.params(m)...).
		Op("*").Id(t.Instruction).
		Block(body...), nil
}

func (e *Emitter) params(m *Method) []jen.Code {
	ps := make([]jen.Code, 0, len(m.Args))

	for i, arg := range m.Args {
		p := jen.Id(arg.Name)

		switch {
		case arg.Type.Repeated && i == len(m.Args)-1:
			p.Op("...")
		case arg.Type.Repeated:
			// only the last parameter can be variadic
			p.Index()
		}

		ps = append(ps, p.Add(e.typ(arg.Type.Name)))
	}

	return ps
}

func (e *Emitter) typ(name string) *jen.Statement {
	switch name {
	case TypeString:
		return jen.String()
	case TypeInstruction:
		return jen.Op("*").Id(e.Target.Instruction)
	case TypeLiteralInteger:
		return jen.Op("*").Id(TypeLiteralInteger)
	case TypeOperand:
		return jen.Id(TypeOperand)
	default:
		return e.spec(name)
	}
}

func (e *Emitter) spec(name string) *jen.Statement {
	if e.Target.SpecPackage == "" {
		return jen.Id(name)
	}
	return jen.Qual(e.Target.SpecPackage, name)
}

func (e *Emitter) body(m *Method) ([]jen.Code, error) {
	t := e.Target

	cons, err := m.Construction()
	if err != nil {
		return nil, err
	}

	id, typ := jen.Lit(0), jen.Nil()

	switch cons {
	case ConstructWithIDAndType:
		rt, _ := m.ResultType()
		id, typ = jen.Id(t.Receiver).Dot(t.NewID).Call(), jen.Id(rt.Name)
	case ConstructWithID:
		id = jen.Id(t.Receiver).Dot(t.NewID).Call()
	}

	result := func() *jen.Statement { return jen.Id("result") }

	code := []jen.Code{
		result().Op(":=").Id(t.NewInstruction).Call(e.spec("Op"+m.Name), id, typ),
		jen.Line(),
	}

	for _, arg := range m.Args {
		if arg.Name == ResultTypeArgName {
			continue
		}

		if arg.Type.Repeated {
			code = append(code, jen.For(jen.List(jen.Id("_"), jen.Id("o")).Op(":=").Range().Id(arg.Name)).Block(
				result().Dot(t.AddOperand).Call(jen.Id("o")),
			))
			continue
		}

		code = append(code, result().Dot(t.AddOperand).Call(jen.Id(arg.Name)))
	}

	var reg string

	switch m.Registration() {
	case RegisterTypeDeclaration:
		reg = t.AddTypeDeclaration
	case RegisterGlobalVariable:
		reg = t.AddGlobalVariable
	case RegisterFunctionDefinition:
		reg = t.AddToFunctionDefinitions
	}

	if reg != "" {
		code = append(code, jen.Id(t.Receiver).Dot(reg).Call(result()), jen.Line())
	}

	code = append(code, jen.Return(result()))

	return code, nil
}
