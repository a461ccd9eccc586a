package codegen

import "fmt"

// SemanticError is one recorded diagnostic, in the order it was raised.
type SemanticError struct {
	Line    int
	Message string
}

func (g *Generator) errorf(line int, format string, args ...interface{}) {
	g.Errors = append(g.Errors, SemanticError{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (g *Generator) errUndefined(line int, name string) {
	g.errorf(line, "'%s' is not defined.", name)
}

func (g *Generator) errVoidDeclaration(line int, name string) {
	g.errorf(line, "Illegal type of void for '%s'.", name)
}

func (g *Generator) errVoidReturnValue(line int, name string) {
	g.errorf(line, "Illegal return value for void function '%s'.", name)
}

func (g *Generator) errArity(line int, fn string) {
	g.errorf(line, "Mismatch in numbers of arguments of '%s'.", fn)
}

func (g *Generator) errArgType(line int, fn string, k int, expected, got Role) {
	g.errorf(line, "Mismatch in type of argument %d of '%s'. Expected '%s' but got '%s' instead.", k, fn, roleTypeName(expected), roleTypeName(got))
}

func (g *Generator) errOperandTypeMismatch(line int, x, y Role) {
	g.errorf(line, "Type mismatch in operands, Got %s instead of %s.", roleTypeName(x), roleTypeName(y))
}

func (g *Generator) errBreakOutsideFor(line int) {
	g.errorf(line, "No 'for' found for 'break'.")
}

func roleTypeName(r Role) string {
	if r == RoleArray {
		return "array"
	}
	return "int"
}
