package wrangle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResultTypeArgName is reserved for the result type argument. No other
// rule can produce it because it is never a keyword or an enum kind.
const ResultTypeArgName = "resultType"

// ReservedWords maps derived argument names that would not compile in the
// generated file to their replacements.
var ReservedWords = map[string]string{
	"object":  "obj",
	"base":    "baseObj",
	"default": "defaultObj",
	"event":   "eventObj",

	// Go keywords
	"break":       "breakObj",
	"case":        "caseObj",
	"chan":        "chanObj",
	"const":       "constObj",
	"continue":    "continueObj",
	"defer":       "deferObj",
	"else":        "elseObj",
	"fallthrough": "fallthroughObj",
	"for":         "forObj",
	"func":        "funcObj",
	"go":          "goObj",
	"goto":        "gotoObj",
	"if":          "ifObj",
	"import":      "importObj",
	"interface":   "interfaceObj",
	"map":         "mapObj",
	"package":     "packageObj",
	"range":       "rangeObj",
	"return":      "returnObj",
	"select":      "selectObj",
	"struct":      "structObj",
	"switch":      "switchObj",
	"type":        "typeObj",
	"var":         "varObj",

	// local declared by every generated method
	"result": "resultObj",
}

// EnumNameKinds lists the operand kinds that name the argument after the
// kind itself when the grammar gives no usable name.
var EnumNameKinds = []string{
	"Dim",
	"ImageFormat",
	"AccessQualifier",
	"StorageClass",
	"SamplerAddressingMode",
	"SamplerFilterMode",
	"FunctionControl",
	"ImageOperands",
	"LoopControl",
	"SelectionControl",
	"MemoryAccess",
}

const drefName = "'D~ref~'"

// ArgumentName derives the argument name for op, which sits at position
// among the instruction's arguments. It reports false when no rule matched
// and the positional placeholder was used instead.
func ArgumentName(op Operand, position int) (string, bool) {
	if op.IsResultType() {
		return ResultTypeArgName, true
	}

	if name, ok := nameFromDescription(op.Name); ok {
		return name, true
	}

	if isEnumNameKind(op.Kind) {
		return lowerFirst(op.Kind), true
	}

	if op.Name == drefName {
		return "dRef", true
	}

	if (op.Kind == KindIdRef || op.Kind == KindPairIdRefRef) && op.Repeated() {
		return "parameters", true
	}

	return fmt.Sprintf("arg%d", position), false
}

// nameFromDescription turns a grammar description such as "'Result Type'"
// into "resultType". Descriptions spanning several lines or listing
// several values ("'Member 0 type', +\n'member 1 type', +\n...") are left
// to the other rules.
func nameFromDescription(desc string) (string, bool) {
	if desc == "" || !isASCII(desc) || strings.ContainsAny(desc, "\n~,") {
		return "", false
	}

	name := strings.NewReplacer("'", "", " ", "", ".", "").Replace(desc)
	if name == "" {
		return "", false
	}

	name = lowerFirst(name)

	if repl, ok := ReservedWords[name]; ok {
		return repl, true
	}

	return name, true
}

func isEnumNameKind(kind string) bool {
	for _, k := range EnumNameKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ResolveConflicts renames every argument whose name occurs more than once
// to name0, name1, ... in order of appearance.
func ResolveConflicts(args []Argument) {
	// A renamed argument can land on a name already taken ("member" twice
	// next to "member0"), so repeat until the names are unique.
	for resolveConflictsOnce(args) {
	}
}

func resolveConflictsOnce(args []Argument) (renamed bool) {
	counts := make(map[string]int, len(args))
	for _, arg := range args {
		counts[arg.Name]++
	}

	next := make(map[string]int)
	for i, arg := range args {
		if counts[arg.Name] < 2 {
			continue
		}
		idx := next[arg.Name]
		next[arg.Name]++
		args[i].Name = fmt.Sprintf("%s%d", arg.Name, idx)
		renamed = true
	}

	return renamed
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
