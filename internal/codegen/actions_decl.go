package codegen

// actBeginDeclaration pushes a fresh, empty Scope Item that subsequent
// type/name/role actions fill in.
func (g *Generator) actBeginDeclaration() {
	g.scopeStack = append(g.scopeStack, &ScopeItem{})
}

func (g *Generator) actTypeSpecifier(t ValueType) {
	g.scopeTop().Type = t
}

func (g *Generator) actAssignName(name string) {
	g.scopeTop().Name = name
}

// actDeclarationRoleFunction marks the pending item as a function,
// reserves its two-word header (return-jump address, return value), and
// pushes it onto the declaration stack so subsequent Params/Compound-stmt
// actions know which function they belong to.
func (g *Generator) actDeclarationRoleFunction() {
	item := g.scopeTop()
	item.Role = RoleFunction
	item.Params = []*ScopeItem{}
	item.MemoryAddress = g.mem
	g.mem += 8 // return-jump word, then return-value word
	g.declStack = append(g.declStack, item)
}

func (g *Generator) actDeclarationRoleVariable(line int) {
	item := g.scopeTop()
	item.Role = RoleVariable
	item.MemoryAddress = g.mem
	if item.Type == VoidType {
		g.errVoidDeclaration(line, item.Name)
		return
	}
	g.emit("ASSIGN", "#0", itoa(item.MemoryAddress), "")
	g.mem += 4
}

// actDeclarationRoleArray allocates n+1 words (index 0 holds the base
// address of element 0) and leaves the base pointer assignment in PB.
func (g *Generator) actDeclarationRoleArray(line int) {
	item := g.scopeTop()
	item.Role = RoleArray
	item.MemoryAddress = g.mem
	n := g.ssTop(0).operand.immediateValue() + 1
	g.ssPop(1)
	if item.Type == VoidType {
		g.errVoidDeclaration(line, item.Name)
		g.mem += 4 * n
		return
	}
	base := item.MemoryAddress
	g.mem += 4 * n
	g.emit("ASSIGN", "#"+itoa(base+4), itoa(base), "")
}

func (g *Generator) actParamRole(role Role) {
	item := g.scopeTop()
	item.Role = role
	item.MemoryAddress = g.mem
	g.mem += 4
	fn := g.currentFunction()
	fn.Params = append(fn.Params, item)
}

func (g *Generator) actBeginFunctionStatement() {
	fn := g.currentFunction()
	fn.CodeAddress = g.cursor
	if fn.Name == "main" {
		g.set(jumpToMainIndex, Instruction{Op: "JP", A1: itoa(fn.CodeAddress)})
	}
}

// actEndFunctionStatement pops every Scope Item pushed since the function
// declaration itself was pushed (its parameters), then pops the
// declaration stack.
func (g *Generator) actEndFunctionStatement() {
	fn := g.currentFunction()
	for g.scopeTop() != fn {
		g.scopeStack = g.scopeStack[:len(g.scopeStack)-1]
	}
	g.declStack = g.declStack[:len(g.declStack)-1]
}

func (g *Generator) actFunctionReturnValue(line int) {
	fn := g.currentFunction()
	if fn.Type == VoidType {
		g.errVoidReturnValue(line, fn.Name)
		g.ssPop(1)
		return
	}
	g.emit("ASSIGN", string(g.ssTop(0).operand), itoa(fn.MemoryAddress+4), "")
	g.ssPop(1)
}

func (g *Generator) actFunctionReturnJump() {
	fn := g.currentFunction()
	if fn.Name != "main" {
		g.emit("JP", "@"+itoa(fn.MemoryAddress), "", "")
	}
}
