package codegen

import "strconv"

func (g *Generator) actPID(line int, name string) {
	item := g.getScopeItem(name)
	if item == nil {
		g.errUndefined(line, name)
		g.ssPush(ssOperandValue(immediateOperand(0), false))
		return
	}
	g.ssPush(ssOperandValue(directOperand(item.MemoryAddress), item.Role == RoleArray))
}

func (g *Generator) actPNum(lexeme string) {
	n, _ := strconv.Atoi(lexeme)
	g.ssPush(ssOperandValue(immediateOperand(n), false))
}

// actNegateTop folds unary minus into the immediate when possible, else
// emits a subtract-from-zero into a fresh temp.
func (g *Generator) actNegateTop() {
	top := g.ssTop(0)
	if top.operand.isImmediate() {
		g.ss[len(g.ss)-1].operand = immediateOperand(-top.operand.immediateValue())
		return
	}
	t := g.newTemp()
	g.emit("SUB", "#0", string(top.operand), itoa(t))
	g.ssPop(1)
	g.ssPush(ssOperandValue(directOperand(t), false))
}

func (g *Generator) checkOperandTypes(line int, a, b ssValue) {
	if a.isArray != b.isArray {
		g.errOperandTypeMismatch(line, arrayRole(b.isArray), arrayRole(a.isArray))
	}
}

func arrayRole(isArray bool) Role {
	if isArray {
		return RoleArray
	}
	return RoleVariable
}

// actDoAddop applies the pending Addop opcode to the two most recent
// operands: SS(0)=b, SS(1)=opcode, SS(2)=a.
func (g *Generator) actDoAddop(line int) {
	b := g.ssTop(0)
	op := g.ssTop(1)
	a := g.ssTop(2)
	g.checkOperandTypes(line, a, b)
	t := g.newTemp()
	g.emit(op.opcode, string(a.operand), string(b.operand), itoa(t))
	g.ssPop(3)
	g.ssPush(ssOperandValue(directOperand(t), false))
}

func (g *Generator) actDoRelop(line int) {
	g.actDoAddop(line)
}

func (g *Generator) actDoMultiply(line int) {
	a := g.ssTop(0)
	b := g.ssTop(1)
	g.checkOperandTypes(line, a, b)
	t := g.newTemp()
	g.emit("MULT", string(a.operand), string(b.operand), itoa(t))
	g.ssPop(2)
	g.ssPush(ssOperandValue(directOperand(t), false))
}

// actPIDAssign emits the assignment and leaves the result on SS so a
// chained "x = y = z" keeps working.
func (g *Generator) actPIDAssign(line int) {
	rhs := g.ssTop(0)
	lhs := g.ssTop(1)
	g.checkOperandTypes(line, rhs, lhs)
	g.emit("ASSIGN", string(rhs.operand), string(lhs.operand), "")
	g.ssPop(1)
}

// actIndexArrayPop turns a[index] into an indirect operand @t, where t
// holds the element's absolute address.
func (g *Generator) actIndexArrayPop() {
	index := g.ssTop(0)
	base := g.ssTop(1)
	t := g.newTemp()
	g.emit("MULT", string(index.operand), "#4", itoa(t))
	g.ssPop(1)
	g.emit("ADD", string(base.operand), itoa(t), itoa(t))
	g.ssPop(1)
	g.ssPush(ssOperandValue(indirectOperand(t), false))
}
