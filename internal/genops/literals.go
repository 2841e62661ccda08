package genops

import "strings"

// registerLiterals installs the zero-arity punctuation literals and the
// string-transform operators.
func registerLiterals(r *Registry) {
	registerLiteral(r, "ANGLE-R", ">")
	registerLiteral(r, "COMMA", ",")
	registerLiteral(r, "SEMICOLON", ";")

	r.Register(&Descriptor{
		Name:             "LOWER_CASE",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryStringOp,
		Description:      "ASCII-only lower-casing",
		Eval: func(call *Call) string {
			return asciiLower(call.Eval(0))
		},
	})

	r.Register(&Descriptor{
		Name:             "UPPER_CASE",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryStringOp,
		Description:      "ASCII-only upper-casing",
		Eval: func(call *Call) string {
			return asciiUpper(call.Eval(0))
		},
	})

	r.Register(&Descriptor{
		Name:             "MAKE_C_IDENTIFIER",
		Arity:            Exact(1),
		GeneratesContent: true,
		Category:         CategoryStringOp,
		Description:      "replaces every byte outside [A-Za-z0-9_] with '_'; prefixes '_' if the result starts with a digit",
		Eval: func(call *Call) string {
			return makeCIdentifier(call.Eval(0))
		},
	})

	r.Register(&Descriptor{
		Name:             "JOIN",
		Arity:            Exact(2),
		GeneratesContent: true,
		Category:         CategoryStringOp,
		Description:      "splits the first parameter on ';' and rejoins with the second",
		Eval: func(call *Call) string {
			list, sep := call.Eval(0), call.Eval(1)
			if call.Ctx.HadError() {
				return ""
			}
			return strings.Join(strings.Split(list, ";"), sep)
		},
	})
}

func registerLiteral(r *Registry, name, value string) {
	r.Register(&Descriptor{
		Name:             name,
		Arity:            Exact(0),
		GeneratesContent: true,
		Category:         CategoryLiteral,
		Description:      "the literal character " + value,
		Eval: func(call *Call) string {
			return value
		},
	})
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func makeCIdentifier(s string) string {
	b := []byte(s)
	for i, c := range b {
		isAlnum := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
		if !isAlnum {
			b[i] = '_'
		}
	}
	if len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		b = append([]byte{'_'}, b...)
	}
	return string(b)
}
