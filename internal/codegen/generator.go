package codegen

import "github.com/minic-lang/minic/internal/grammar"

const (
	spAddr          = 0 // data-memory address holding the runtime stack pointer
	jumpToMainIndex = 1 // PB index reserved for the jump to main's entry point
	initialMem      = 500
)

// ssKind tags what a Semantic Stack entry currently holds: a rendered
// operand, a pending opcode name (pushed by an Addop/Relop before its
// operation fires), or a raw PB index used by the back-patching actions.
type ssKind int

const (
	ssOperand ssKind = iota
	ssOpcode
	ssIndex
)

type ssValue struct {
	kind    ssKind
	operand Operand
	isArray bool
	opcode  string
	index   int
}

func ssOperandValue(op Operand, isArray bool) ssValue {
	return ssValue{kind: ssOperand, operand: op, isArray: isArray}
}

func ssOpcodeValue(name string) ssValue { return ssValue{kind: ssOpcode, opcode: name} }

func ssIndexValue(i int) ssValue { return ssValue{kind: ssIndex, index: i} }

// Generator is MiniC's code generator: it owns the program block, the
// data-memory cursor, the Semantic Stack, the Scope Stack, the
// declaration and call stacks, the Break Stack, and the accumulated
// semantic errors. Dispatch is its single entry point, called once per
// semantic-action symbol the parser crosses.
type Generator struct {
	scopeStack []*ScopeItem // nil entries are SCOPE_ENTER sentinels
	declStack  []*ScopeItem // function currently being declared/defined
	callStack  []*pendingCall // function currently being called (Var_call_prime in progress)
	breakStack [][]int

	pb     []*Instruction
	cursor int
	mem    int

	ss []ssValue

	outputItem *ScopeItem

	Errors []SemanticError
}

// New creates a Generator with PB's initial stack-pointer setup already
// emitted and the synthetic single-argument "output" function seeded at
// the bottom of the Scope Stack.
func New() *Generator {
	g := &Generator{mem: initialMem}
	g.set(0, Instruction{Op: "ASSIGN", A1: "#4", A2: "0"})
	g.cursor = jumpToMainIndex + 1

	g.outputItem = &ScopeItem{Name: "output", Type: VoidType, Role: RoleFunction, Params: []*ScopeItem{{Type: IntType, Role: RoleVariable}}}
	g.scopeStack = append(g.scopeStack, g.outputItem)
	return g
}

// PB returns the generated program block; report.RenderOutput handles
// rendering a sparse listing with the gap-preserving convention output.txt
// needs.
func (g *Generator) PB() []*Instruction { return g.pb }

func (g *Generator) ensureLen(i int) {
	for len(g.pb) <= i {
		g.pb = append(g.pb, nil)
	}
}

func (g *Generator) set(i int, instr Instruction) {
	g.ensureLen(i)
	ins := instr
	g.pb[i] = &ins
}

func (g *Generator) emit(op, a1, a2, a3 string) int {
	at := g.cursor
	g.set(at, Instruction{Op: op, A1: a1, A2: a2, A3: a3})
	g.cursor++
	return at
}

func (g *Generator) newTemp() int {
	t := g.mem
	g.mem += 4
	return t
}

// --- Semantic Stack helpers ---

func (g *Generator) ssPush(v ssValue) { g.ss = append(g.ss, v) }

func (g *Generator) ssPop(n int) { g.ss = g.ss[:len(g.ss)-n] }

func (g *Generator) ssTop(idx int) ssValue { return g.ss[len(g.ss)-1-idx] }

// --- Scope Stack helpers ---

func (g *Generator) scopeEnter() { g.scopeStack = append(g.scopeStack, nil) }

func (g *Generator) scopeExit() {
	for {
		n := len(g.scopeStack) - 1
		item := g.scopeStack[n]
		g.scopeStack = g.scopeStack[:n]
		if item == nil {
			return
		}
	}
}

func (g *Generator) scopeTop() *ScopeItem { return g.scopeStack[len(g.scopeStack)-1] }

func (g *Generator) getScopeItem(name string) *ScopeItem {
	for i := len(g.scopeStack) - 1; i >= 0; i-- {
		item := g.scopeStack[i]
		if item != nil && item.Name == name {
			return item
		}
	}
	return nil
}

func (g *Generator) currentFunction() *ScopeItem { return g.declStack[len(g.declStack)-1] }

// Dispatch executes the effect of one semantic-action symbol. line is the
// source line to blame for any diagnostic it raises; lexeme is the most
// recently matched terminal's text (the identifier or number literal an
// action like PID/PNUM/SA_ASSIGN_NAME captures).
func (g *Generator) Dispatch(action grammar.Action, line int, lexeme string) {
	switch action {
	case grammar.ActScopeEnter:
		g.scopeEnter()
	case grammar.ActScopeExit:
		g.scopeExit()
	case grammar.ActBeginDecl:
		g.actBeginDeclaration()
	case grammar.ActTypeSpecInt:
		g.actTypeSpecifier(IntType)
	case grammar.ActTypeSpecVoid:
		g.actTypeSpecifier(VoidType)
	case grammar.ActAssignName:
		g.actAssignName(lexeme)
	case grammar.ActDeclRoleFunc:
		g.actDeclarationRoleFunction()
	case grammar.ActDeclRoleVar:
		g.actDeclarationRoleVariable(line)
	case grammar.ActDeclRoleArray:
		g.actDeclarationRoleArray(line)
	case grammar.ActParamRoleInt:
		g.actParamRole(RoleVariable)
	case grammar.ActParamRoleArray:
		g.actParamRole(RoleArray)
	case grammar.ActBeginFuncStmt:
		g.actBeginFunctionStatement()
	case grammar.ActEndFuncStmt:
		g.actEndFunctionStatement()
	case grammar.ActFuncReturnValue:
		g.actFunctionReturnValue(line)
	case grammar.ActFuncReturnJump:
		g.actFunctionReturnJump()

	case grammar.ActPID:
		g.actPID(line, lexeme)
	case grammar.ActPNum:
		g.actPNum(lexeme)
	case grammar.ActPushPlus:
		g.ssPush(ssOpcodeValue("ADD"))
	case grammar.ActPushMinus:
		g.ssPush(ssOpcodeValue("SUB"))
	case grammar.ActPushRelopGT:
		g.ssPush(ssOpcodeValue("LT"))
	case grammar.ActPushRelopEQ:
		g.ssPush(ssOpcodeValue("EQ"))
	case grammar.ActNegateTop:
		g.actNegateTop()
	case grammar.ActDoAddop:
		g.actDoAddop(line)
	case grammar.ActDoRelop:
		g.actDoRelop(line)
	case grammar.ActDoMultiply:
		g.actDoMultiply(line)
	case grammar.ActPIDAssign:
		g.actPIDAssign(line)
	case grammar.ActIndexArrayPop:
		g.actIndexArrayPop()

	case grammar.ActPop:
		g.ssPop(1)
	case grammar.ActSave:
		g.actSave()
	case grammar.ActLabel:
		g.actLabel()
	case grammar.ActJP:
		g.actJP()
	case grammar.ActJPF:
		g.actJPF()
	case grammar.ActJPFSave:
		g.actJPFSave()
	case grammar.ActSaveJump:
		g.actSaveJump()
	case grammar.ActJumpFill:
		g.actJumpFill()
	case grammar.ActFor:
		g.actFor()
	case grammar.ActCheckBreakSave:
		g.actCheckBreakSave(line)

	case grammar.ActBeginFuncCall:
		g.actBeginFunctionCall(line, lexeme)
	case grammar.ActEndFuncCall:
		g.actEndFunctionCall(line)

	default:
		panic("codegen: unhandled action " + string(action))
	}
}
