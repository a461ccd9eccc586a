package codegen

// pendingCall tracks one function call between begin_function_call and
// end_function_call: which Scope Item it resolved to (nil if undefined or
// not a function)
// and the Semantic Stack depth its arguments start at.
type pendingCall struct {
	fn       *ScopeItem
	argsBase int
}

// actBeginFunctionCall resolves the callee. An outright-undefined name was
// already reported by the ActPID dispatched just before this one, so only a
// name resolving to something other than a function raises a fresh error
// here.
func (g *Generator) actBeginFunctionCall(line int, name string) {
	fn := g.getScopeItem(name)
	if fn != nil && fn.Role != RoleFunction {
		g.errUndefined(line, name)
		fn = nil
	}
	g.callStack = append(g.callStack, &pendingCall{fn: fn, argsBase: len(g.ss)})
}

// actEndFunctionCall binds the collected arguments, emits the call, and
// leaves the result on the Semantic Stack in place of the function-handle
// placeholder PID pushed: #0 for output() and unresolved calls, otherwise a
// fresh temp holding the return value (assigned #0 for void functions).
func (g *Generator) actEndFunctionCall(line int) {
	pc := g.callStack[len(g.callStack)-1]
	g.callStack = g.callStack[:len(g.callStack)-1]

	args := append([]ssValue(nil), g.ss[pc.argsBase:]...)
	g.ss = g.ss[:pc.argsBase]
	g.ssPop(1) // the function-handle placeholder PID left behind

	fn := pc.fn
	if fn == nil {
		g.ssPush(ssOperandValue(immediateOperand(0), false))
		return
	}

	if fn == g.outputItem {
		if len(args) != len(fn.Params) {
			g.errArity(line, fn.Name)
		}
		if len(args) >= 1 {
			g.emit("PRINT", string(args[0].operand), "", "")
		}
		g.ssPush(ssOperandValue(immediateOperand(0), false))
		return
	}

	if len(args) != len(fn.Params) {
		g.errArity(line, fn.Name)
	} else {
		for i, p := range fn.Params {
			a := args[i]
			if a.isArray != (p.Role == RoleArray) {
				g.errArgType(line, fn.Name, i+1, arrayRole(p.Role == RoleArray), arrayRole(a.isArray))
			}
		}
	}

	recursive := len(g.declStack) > 0 && g.declStack[len(g.declStack)-1] == fn
	var saved []int
	if recursive {
		saved = g.pushRecursionSave(fn)
	}

	for i := len(args) - 1; i >= 0; i-- {
		if i < len(fn.Params) {
			g.emit("ASSIGN", string(args[i].operand), itoa(fn.Params[i].MemoryAddress), "")
		}
	}

	g.emit("ASSIGN", "#"+itoa(g.cursor+2), itoa(fn.MemoryAddress), "")
	g.emit("JP", itoa(fn.CodeAddress), "", "")

	if recursive {
		g.popRecursionRestore(saved)
	}

	t := g.newTemp()
	if fn.Type == IntType {
		g.emit("ASSIGN", itoa(fn.MemoryAddress+4), itoa(t), "")
	} else {
		g.emit("ASSIGN", "#0", itoa(t), "")
	}
	g.ssPush(ssOperandValue(directOperand(t), false))
}

// collectRecursionLocals lists every data-memory word that must survive a
// self-recursive call: fn's return-jump and return-value words, plus
// every scalar parameter and local variable declared so far in its body.
func (g *Generator) collectRecursionLocals(fn *ScopeItem) []int {
	addrs := []int{fn.MemoryAddress, fn.MemoryAddress + 4}
	for i := len(g.scopeStack) - 1; i >= 0; i-- {
		item := g.scopeStack[i]
		if item == fn {
			break
		}
		if item != nil && item.Role == RoleVariable {
			addrs = append(addrs, item.MemoryAddress)
		}
	}
	return addrs
}

// pushRecursionSave pushes every address collectRecursionLocals names onto
// the runtime SP stack, so a recursive call can't clobber the caller's own
// copies. Returns the addresses in push order for popRecursionRestore.
func (g *Generator) pushRecursionSave(fn *ScopeItem) []int {
	addrs := g.collectRecursionLocals(fn)
	for _, a := range addrs {
		g.emit("ASSIGN", itoa(a), "@"+itoa(spAddr), "")
		g.emit("ADD", "#4", itoa(spAddr), itoa(spAddr))
	}
	return addrs
}

// popRecursionRestore undoes pushRecursionSave in LIFO order once the
// recursive call returns.
func (g *Generator) popRecursionRestore(addrs []int) {
	for i := len(addrs) - 1; i >= 0; i-- {
		g.emit("SUB", itoa(spAddr), "#4", itoa(spAddr))
		g.emit("ASSIGN", "@"+itoa(spAddr), itoa(addrs[i]), "")
	}
}
