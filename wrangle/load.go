package wrangle

import (
	"encoding/json"
	"io"
	"os"

	"tlog.app/go/errors"
)

// The document mirrors the grammar JSON with pointers for the keys the
// generator cannot do without, so a missing key is told apart from an
// empty one.
type (
	grammarDoc struct {
		Copyright    *[]string         `json:"copyright"`
		MagicNumber  string            `json:"magic_number"`
		MajorVersion int               `json:"major_version"`
		MinorVersion int               `json:"minor_version"`
		Revision     int               `json:"revision"`
		Instructions *[]instructionDoc `json:"instructions"`
	}

	instructionDoc struct {
		OpName   *string      `json:"opname"`
		Class    *string      `json:"class"`
		OpCode   uint32       `json:"opcode"`
		Operands []operandDoc `json:"operands"`
	}

	operandDoc struct {
		Kind       *string `json:"kind"`
		Name       string  `json:"name"`
		Quantifier string  `json:"quantifier"`
	}
)

func LoadGrammar(filename string) (*Grammar, error) {
	r, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open grammar")
	}
	defer r.Close()

	g, err := DecodeGrammar(r)
	if err != nil {
		return nil, errors.Wrap(err, "%v", filename)
	}

	return g, nil
}

// DecodeGrammar reads a grammar document. Only the keys needed to drive
// generation are checked; anything else in the document is ignored.
func DecodeGrammar(r io.Reader) (*Grammar, error) {
	var doc grammarDoc

	err := json.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode grammar")
	}

	if doc.Copyright == nil {
		return nil, errors.New("missing key: copyright")
	}
	if doc.Instructions == nil {
		return nil, errors.New("missing key: instructions")
	}

	magic, err := ParseWord(doc.MagicNumber)
	if err != nil {
		return nil, errors.Wrap(err, "magic_number")
	}

	g := &Grammar{
		Copyright:    *doc.Copyright,
		MagicNumber:  magic,
		MajorVersion: doc.MajorVersion,
		MinorVersion: doc.MinorVersion,
		Revision:     doc.Revision,
		Instructions: make([]Instruction, 0, len(*doc.Instructions)),
	}

	for i, raw := range *doc.Instructions {
		inst, err := raw.instruction()
		if err != nil {
			return nil, errors.Wrap(err, "instruction %d", i)
		}

		g.Instructions = append(g.Instructions, inst)
	}

	return g, nil
}

func (d instructionDoc) instruction() (Instruction, error) {
	if d.OpName == nil {
		return Instruction{}, errors.New("missing key: opname")
	}
	if d.Class == nil {
		return Instruction{}, errors.New("%v: missing key: class", *d.OpName)
	}

	inst := Instruction{
		OpName: *d.OpName,
		Class:  Class(*d.Class),
		OpCode: d.OpCode,
	}

	for i, op := range d.Operands {
		if op.Kind == nil {
			return Instruction{}, errors.New("%v: operand %d: missing key: kind", inst.OpName, i)
		}

		inst.Operands = append(inst.Operands, Operand{
			Kind:       *op.Kind,
			Name:       op.Name,
			Quantifier: op.Quantifier,
		})
	}

	return inst, nil
}
