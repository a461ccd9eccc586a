package parser

import (
	"github.com/minic-lang/minic/internal/grammar"
	"github.com/minic-lang/minic/internal/parsetree"
)

// Each of the following is the dedicated procedure for one grammar
// nonterminal, selecting and walking its production via the shared
// expand/walk engine in parser.go. Keeping one named procedure per
// nonterminal (rather than a single generic loop over the grammar) keeps
// the call stack and any future nonterminal-specific recovery logic
// readable under a debugger, one frame per grammar rule.

func (p *Parser) parseProgram() *parsetree.Node { return p.expand(grammar.Program) }

func (p *Parser) parseDeclarationList() *parsetree.Node { return p.expand(grammar.DeclarationList) }

func (p *Parser) parseDeclaration() *parsetree.Node { return p.expand(grammar.Declaration) }

func (p *Parser) parseDeclarationInitial() *parsetree.Node {
	return p.expand(grammar.DeclarationInitial)
}

func (p *Parser) parseDeclarationPrime() *parsetree.Node { return p.expand(grammar.DeclarationPrime) }

func (p *Parser) parseVarDeclarationPrime() *parsetree.Node {
	return p.expand(grammar.VarDeclarationPrime)
}

func (p *Parser) parseFunDeclarationPrime() *parsetree.Node {
	return p.expand(grammar.FunDeclarationPrime)
}

func (p *Parser) parseTypeSpecifier() *parsetree.Node { return p.expand(grammar.TypeSpecifier) }

func (p *Parser) parseParams() *parsetree.Node { return p.expand(grammar.Params) }

func (p *Parser) parseParamList() *parsetree.Node { return p.expand(grammar.ParamList) }

func (p *Parser) parseParam() *parsetree.Node { return p.expand(grammar.Param) }

func (p *Parser) parseParamPrime() *parsetree.Node { return p.expand(grammar.ParamPrime) }

func (p *Parser) parseCompoundStmt() *parsetree.Node { return p.expand(grammar.CompoundStmt) }

func (p *Parser) parseStatementList() *parsetree.Node { return p.expand(grammar.StatementList) }

func (p *Parser) parseStatement() *parsetree.Node { return p.expand(grammar.Statement) }

func (p *Parser) parseExpressionStmt() *parsetree.Node { return p.expand(grammar.ExpressionStmt) }

func (p *Parser) parseSelectionStmt() *parsetree.Node { return p.expand(grammar.SelectionStmt) }

func (p *Parser) parseElseStmt() *parsetree.Node { return p.expand(grammar.ElseStmt) }

func (p *Parser) parseIterationStmt() *parsetree.Node { return p.expand(grammar.IterationStmt) }

func (p *Parser) parseReturnStmt() *parsetree.Node { return p.expand(grammar.ReturnStmt) }

func (p *Parser) parseReturnStmtPrime() *parsetree.Node { return p.expand(grammar.ReturnStmtPrime) }

func (p *Parser) parseExpression() *parsetree.Node { return p.expand(grammar.Expression) }

func (p *Parser) parseB() *parsetree.Node { return p.expand(grammar.BNT) }

func (p *Parser) parseH() *parsetree.Node { return p.expand(grammar.HNT) }

func (p *Parser) parseSimpleExpressionZegond() *parsetree.Node {
	return p.expand(grammar.SimpleExpressionZegond)
}

func (p *Parser) parseSimpleExpressionPrime() *parsetree.Node {
	return p.expand(grammar.SimpleExpressionPrime)
}

func (p *Parser) parseC() *parsetree.Node { return p.expand(grammar.CNT) }

func (p *Parser) parseRelop() *parsetree.Node { return p.expand(grammar.Relop) }

func (p *Parser) parseAdditiveExpression() *parsetree.Node {
	return p.expand(grammar.AdditiveExpression)
}

func (p *Parser) parseAdditiveExpressionPrime() *parsetree.Node {
	return p.expand(grammar.AdditiveExpressionPrime)
}

func (p *Parser) parseAdditiveExpressionZegond() *parsetree.Node {
	return p.expand(grammar.AdditiveExpressionZegond)
}

func (p *Parser) parseD() *parsetree.Node { return p.expand(grammar.DNT) }

func (p *Parser) parseAddop() *parsetree.Node { return p.expand(grammar.Addop) }

func (p *Parser) parseTerm() *parsetree.Node { return p.expand(grammar.Term) }

func (p *Parser) parseTermPrime() *parsetree.Node { return p.expand(grammar.TermPrime) }

func (p *Parser) parseTermZegond() *parsetree.Node { return p.expand(grammar.TermZegond) }

func (p *Parser) parseG() *parsetree.Node { return p.expand(grammar.GNT) }

func (p *Parser) parseSignedFactor() *parsetree.Node { return p.expand(grammar.SignedFactor) }

func (p *Parser) parseSignedFactorPrime() *parsetree.Node {
	return p.expand(grammar.SignedFactorPrime)
}

func (p *Parser) parseSignedFactorZegond() *parsetree.Node {
	return p.expand(grammar.SignedFactorZegond)
}

func (p *Parser) parseFactor() *parsetree.Node { return p.expand(grammar.Factor) }

func (p *Parser) parseVarCallPrime() *parsetree.Node { return p.expand(grammar.VarCallPrime) }

func (p *Parser) parseVarPrime() *parsetree.Node { return p.expand(grammar.VarPrime) }

func (p *Parser) parseFactorPrime() *parsetree.Node { return p.expand(grammar.FactorPrime) }

func (p *Parser) parseFactorZegond() *parsetree.Node { return p.expand(grammar.FactorZegond) }

func (p *Parser) parseArgs() *parsetree.Node { return p.expand(grammar.Args) }

func (p *Parser) parseArgList() *parsetree.Node { return p.expand(grammar.ArgList) }

func (p *Parser) parseArgListPrime() *parsetree.Node { return p.expand(grammar.ArgListPrime) }

// nonTerminalProcedures wires every nonterminal to its dedicated
// procedure, for expand's recursive-descent into an rhs NonTerminal
// symbol.
func (p *Parser) nonTerminalProcedures() map[grammar.NonTerminal]func() *parsetree.Node {
	return map[grammar.NonTerminal]func() *parsetree.Node{
		grammar.Program:                  p.parseProgram,
		grammar.DeclarationList:          p.parseDeclarationList,
		grammar.Declaration:              p.parseDeclaration,
		grammar.DeclarationInitial:       p.parseDeclarationInitial,
		grammar.DeclarationPrime:         p.parseDeclarationPrime,
		grammar.VarDeclarationPrime:      p.parseVarDeclarationPrime,
		grammar.FunDeclarationPrime:      p.parseFunDeclarationPrime,
		grammar.TypeSpecifier:            p.parseTypeSpecifier,
		grammar.Params:                   p.parseParams,
		grammar.ParamList:                p.parseParamList,
		grammar.Param:                    p.parseParam,
		grammar.ParamPrime:               p.parseParamPrime,
		grammar.CompoundStmt:             p.parseCompoundStmt,
		grammar.StatementList:            p.parseStatementList,
		grammar.Statement:                p.parseStatement,
		grammar.ExpressionStmt:           p.parseExpressionStmt,
		grammar.SelectionStmt:            p.parseSelectionStmt,
		grammar.ElseStmt:                 p.parseElseStmt,
		grammar.IterationStmt:            p.parseIterationStmt,
		grammar.ReturnStmt:               p.parseReturnStmt,
		grammar.ReturnStmtPrime:          p.parseReturnStmtPrime,
		grammar.Expression:               p.parseExpression,
		grammar.BNT:                      p.parseB,
		grammar.HNT:                      p.parseH,
		grammar.SimpleExpressionZegond:   p.parseSimpleExpressionZegond,
		grammar.SimpleExpressionPrime:    p.parseSimpleExpressionPrime,
		grammar.CNT:                      p.parseC,
		grammar.Relop:                    p.parseRelop,
		grammar.AdditiveExpression:       p.parseAdditiveExpression,
		grammar.AdditiveExpressionPrime:  p.parseAdditiveExpressionPrime,
		grammar.AdditiveExpressionZegond: p.parseAdditiveExpressionZegond,
		grammar.DNT:                      p.parseD,
		grammar.Addop:                    p.parseAddop,
		grammar.Term:                     p.parseTerm,
		grammar.TermPrime:                p.parseTermPrime,
		grammar.TermZegond:               p.parseTermZegond,
		grammar.GNT:                      p.parseG,
		grammar.SignedFactor:             p.parseSignedFactor,
		grammar.SignedFactorPrime:        p.parseSignedFactorPrime,
		grammar.SignedFactorZegond:       p.parseSignedFactorZegond,
		grammar.Factor:                   p.parseFactor,
		grammar.VarCallPrime:             p.parseVarCallPrime,
		grammar.VarPrime:                 p.parseVarPrime,
		grammar.FactorPrime:              p.parseFactorPrime,
		grammar.FactorZegond:             p.parseFactorZegond,
		grammar.Args:                     p.parseArgs,
		grammar.ArgList:                  p.parseArgList,
		grammar.ArgListPrime:             p.parseArgListPrime,
	}
}
