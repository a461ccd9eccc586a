package codegen

// actSave reserves one PB slot for a later conditional patch (used by
// "if" before its body) and remembers its index on the Semantic Stack.
func (g *Generator) actSave() {
	g.ssPush(ssIndexValue(g.cursor))
	g.cursor++
}

// actLabel remembers the current cursor without reserving anything, for
// a later unconditional jump back to it.
func (g *Generator) actLabel() {
	g.ssPush(ssIndexValue(g.cursor))
}

func (g *Generator) actJP() {
	at := g.ssTop(0).index
	g.set(at, Instruction{Op: "JP", A1: itoa(g.cursor)})
	g.ssPop(1)
}

func (g *Generator) actJPF() {
	at := g.ssTop(0).index
	cond := g.ssTop(1).operand
	g.set(at, Instruction{Op: "JPF", A1: string(cond), A2: itoa(g.cursor)})
	g.ssPop(2)
}

// actJPFSave patches the reserved slot with a JPF targeting cursor+1 (the
// slot reserved immediately after it) and reserves one more slot for the
// matching unconditional jump past the else branch.
func (g *Generator) actJPFSave() {
	at := g.ssTop(0).index
	cond := g.ssTop(1).operand
	g.set(at, Instruction{Op: "JPF", A1: string(cond), A2: itoa(g.cursor + 1)})
	g.ssPop(2)
	g.ssPush(ssIndexValue(g.cursor))
	g.cursor++
}

// actSaveJump reserves the three-slot test/skip/exit block used by for:
// (i) the EQ test written immediately, (ii) a slot that will become a
// conditional jump straight into the body, (iii) a slot that will become
// the loop's exit check.
func (g *Generator) actSaveJump() {
	t := g.newTemp()
	cond := g.ssTop(0)
	g.set(g.cursor, Instruction{Op: "EQ", A1: string(cond.operand), A2: "#0", A3: itoa(t)})
	g.ssPush(ssIndexValue(g.cursor + 2)) // addr_body: patched by actFor
	g.ssPush(ssOperandValue(directOperand(t), false))
	g.ssPush(ssIndexValue(g.cursor + 1)) // addr_skip: patched below
	g.cursor += 3
}

// actJumpFill runs once the loop's increment expression (E3) has been
// parsed: it discards E3's unused result, emits the unconditional jump
// back to the condition, patches the skip slot to enter the body, and
// opens a fresh Break Stack frame for this loop.
func (g *Generator) actJumpFill() {
	g.ssPop(1) // E3's discarded result
	addrCond := g.ssTop(4).index
	g.set(g.cursor, Instruction{Op: "JP", A1: itoa(addrCond)})
	g.cursor++
	skipAt := g.ssTop(0).index
	condT := g.ssTop(1).operand
	g.set(skipAt, Instruction{Op: "JPF", A1: string(condT), A2: itoa(g.cursor)})
	g.ssPop(2)
	g.breakStack = append(g.breakStack, nil)
}

// actFor closes the loop: emits the jump back to the increment, patches
// the exit-check slot reserved by actSaveJump, and patches every break
// recorded in this loop's Break Stack frame to land here.
func (g *Generator) actFor() {
	bodyBack := g.ssTop(0).index + 1
	g.set(g.cursor, Instruction{Op: "JP", A1: itoa(bodyBack)})
	g.cursor++
	exitAt := g.ssTop(0).index
	e2val := g.ssTop(1).operand
	g.set(exitAt, Instruction{Op: "JPF", A1: string(e2val), A2: itoa(g.cursor)})
	g.ssPop(3)

	n := len(g.breakStack)
	for _, at := range g.breakStack[n-1] {
		g.set(at, Instruction{Op: "JP", A1: itoa(g.cursor)})
	}
	g.breakStack = g.breakStack[:n-1]
}

// actCheckBreakSave reserves a slot for break's exit jump and records its
// index on the innermost loop's Break Stack frame.
func (g *Generator) actCheckBreakSave(line int) {
	n := len(g.breakStack)
	if n == 0 {
		g.errBreakOutsideFor(line)
		g.cursor++
		return
	}
	g.breakStack[n-1] = append(g.breakStack[n-1], g.cursor)
	g.cursor++
}
