// Package parser implements WitcherScript's recursive-descent,
// operator-precedence-climbing parser.
//
// Modeled on CWBudde-go-dws's internal/parser: a precedence table plus
// prefix/infix parse function maps driving a Pratt expression parser,
// simplified to this language's single statement grammar and its
// stop-on-first-error contract (spec.md's Non-goals explicitly exclude
// source-location recovery past the first error, so there is no
// panic-mode synchronize() here).
package parser

import (
	"fmt"

	"github.com/rwnicholas/WitcherScript/internal/ast"
	"github.com/rwnicholas/WitcherScript/internal/lexer"
	"github.com/rwnicholas/WitcherScript/internal/token"
)

// Error is a parse failure carrying the offending token's position.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Precedence levels, lowest to highest, per spec.md's expression grammar.
const (
	_ int = iota
	LOWEST
	PREC_OR
	PREC_AND
	PREC_EQUALITY
	PREC_COMPARE
	PREC_SUM
	PREC_PRODUCT
	PREC_UNARY
)

var precedences = map[token.Type]int{
	token.OR:         PREC_OR,
	token.AND:        PREC_AND,
	token.EQ:         PREC_EQUALITY,
	token.NOT_EQ:     PREC_EQUALITY,
	token.LESS:       PREC_COMPARE,
	token.GREATER:    PREC_COMPARE,
	token.LESS_EQ:    PREC_COMPARE,
	token.GREATER_EQ: PREC_COMPARE,
	token.PLUS:       PREC_SUM,
	token.MINUS:      PREC_SUM,
	token.STAR:       PREC_PRODUCT,
	token.SLASH:      PREC_PRODUCT,
	token.PERCENT:    PREC_PRODUCT,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser consumes a token sequence and produces a list of statement nodes.
type Parser struct {
	tokens []token.Token
	pos    int

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New builds a Parser over a complete token stream (typically the output
// of lexer.Tokenize).
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.NUMBER:  p.parseNumberLit,
		token.TEXT:    p.parseTextLit,
		token.TRUTH:   p.parseBoolLit,
		token.FALSEHOOD: p.parseBoolLit,
		token.IDENT:   p.parseIdent,
		token.LPAREN:  p.parseGroupedExpr,
		token.LBRACK:  p.parseArrayLit,
		token.MINUS:   p.parseUnary,
		token.NOT:     p.parseUnary,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.OR:         p.parseBinOp,
		token.AND:        p.parseBinOp,
		token.EQ:         p.parseBinOp,
		token.NOT_EQ:     p.parseBinOp,
		token.LESS:       p.parseBinOp,
		token.GREATER:    p.parseBinOp,
		token.LESS_EQ:    p.parseBinOp,
		token.GREATER_EQ: p.parseBinOp,
		token.PLUS:       p.parseBinOp,
		token.MINUS:      p.parseBinOp,
		token.STAR:       p.parseBinOp,
		token.SLASH:      p.parseBinOp,
		token.PERCENT:    p.parseBinOp,
	}

	return p
}

// Parse tokenizes nothing itself (tokens are supplied by the caller) and
// returns the program's statement list.
func Parse(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	stmts, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}

// ParseSource is the convenience entry point: lex then parse.
func ParseSource(source string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) curIs(t token.Type) bool {
	return p.cur().Type == t
}

func (p *Parser) expect(t token.Type) (token.Token, error) {
	if !p.curIs(t) {
		return token.Token{}, &Error{
			Pos:     p.cur().Pos,
			Message: fmt.Sprintf("expected %s, got %s (%q)", t, p.cur().Type, p.cur().Literal),
		}
	}
	return p.advance(), nil
}

func (p *Parser) skipNewlines() {
	for p.curIs(token.NEWLINE) {
		p.advance()
	}
}

func (p *Parser) parseProgram() ([]ast.Statement, error) {
	var stmts []ast.Statement
	p.skipNewlines()
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return stmts, nil
}

// parseBlock consumes statements until the matching `}`, which it does not
// itself consume.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	var stmts []ast.Statement
	p.skipNewlines()
	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			return nil, &Error{Pos: p.cur().Pos, Message: "unexpected end of input, expected '}'"}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case token.CONTRACT, token.MUTATION:
		return p.parseVarDecl()
	case token.IGNI:
		return p.parseIf()
	case token.QUEN:
		return p.parseWhile()
	case token.YRDEN:
		return p.parseFor()
	case token.AARD:
		return p.parseFuncDef()
	case token.HUNT:
		return p.parseReturn()
	case token.MEDALLION:
		return p.parsePrintStatement()
	case token.GRIMOIRE:
		return p.parseImport()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseVarDecl() (ast.Statement, error) {
	kwTok := p.advance()
	isConstant := kwTok.Type == token.MUTATION

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Token: kwTok, Name: nameTok.Literal, Initializer: value, IsConstant: isConstant}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.advance()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}

	var elseBody []ast.Statement
	saved := p.pos
	p.skipNewlines()
	if p.curIs(token.ELIXIR) {
		p.advance()
		if _, err := p.expect(token.LBRACE); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
	} else {
		p.pos = saved
	}

	return &ast.If{Token: tok, Condition: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok := p.advance()
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.While{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	tok := p.advance()
	varTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.For{Token: tok, LoopVar: varTok.Literal, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseFuncDef() (ast.Statement, error) {
	tok := p.advance()
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if !p.curIs(token.RPAREN) {
		for {
			pTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			params = append(params, pTok.Literal)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.FuncDef{Token: tok, Name: nameTok.Literal, Params: params, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	tok := p.advance()
	if p.curIs(token.NEWLINE) || p.curIs(token.EOF) || p.curIs(token.RBRACE) {
		return &ast.Return{Token: tok}, nil
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Token: tok, Value: value}, nil
}

func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	tok := p.advance()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArgList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	call := &ast.Call{Token: tok, Name: "medallion", Args: args}
	return &ast.ExprStmt{Token: tok, Expression: call}, nil
}

func (p *Parser) parseImport() (ast.Statement, error) {
	tok := p.advance()
	pathTok, err := p.expect(token.TEXT)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Token: tok, Path: pathTok.Literal}, nil
}

func (p *Parser) parseExprStatement() (ast.Statement, error) {
	tok := p.cur()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Token: tok, Expression: expr}, nil
}

// parseArgList parses a comma-separated expression list terminated by (but
// not consuming) end.
func (p *Parser) parseArgList(end token.Type) ([]ast.Expression, error) {
	var args []ast.Expression
	if p.curIs(end) {
		return args, nil
	}
	for {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return args, nil
}

// parseExpression is the Pratt-parser core: parse a prefix production, then
// repeatedly fold in infix/postfix operators of higher precedence than min.
func (p *Parser) parseExpression(min int) (ast.Expression, error) {
	prefix, ok := p.prefixParseFns[p.cur().Type]
	if !ok {
		return nil, &Error{Pos: p.cur().Pos, Message: fmt.Sprintf("unexpected token %s (%q) in expression", p.cur().Type, p.cur().Literal)}
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	left, err = p.parsePostfix(left)
	if err != nil {
		return nil, err
	}

	for {
		infix, ok := p.infixParseFns[p.cur().Type]
		if !ok {
			break
		}
		prec := precedences[p.cur().Type]
		if prec <= min {
			break
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseBinOp(left ast.Expression) (ast.Expression, error) {
	opTok := p.advance()
	prec := precedences[opTok.Type]
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Token: opTok, Operator: opTok.Literal, Left: left, Right: right}, nil
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	opTok := p.advance()
	operand, err := p.parseExpression(PREC_UNARY)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Token: opTok, Operator: opTok.Literal, Operand: operand}, nil
}

func (p *Parser) parseNumberLit() (ast.Expression, error) {
	tok := p.advance()
	var f float64
	if _, err := fmt.Sscanf(tok.Literal, "%g", &f); err != nil {
		return nil, &Error{Pos: tok.Pos, Message: fmt.Sprintf("malformed number literal %q", tok.Literal)}
	}
	return &ast.NumberLit{Token: tok, Value: f}, nil
}

func (p *Parser) parseTextLit() (ast.Expression, error) {
	tok := p.advance()
	return &ast.TextLit{Token: tok, Value: tok.Literal}, nil
}

func (p *Parser) parseBoolLit() (ast.Expression, error) {
	tok := p.advance()
	return &ast.BoolLit{Token: tok, Value: tok.Type == token.TRUTH}, nil
}

func (p *Parser) parseIdent() (ast.Expression, error) {
	tok := p.advance()
	return &ast.Ident{Token: tok, Name: tok.Literal}, nil
}

func (p *Parser) parseGroupedExpr() (ast.Expression, error) {
	p.advance() // skip '('
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseArrayLit() (ast.Expression, error) {
	tok := p.advance() // skip '['
	elements, err := p.parseArgList(token.RBRACK)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACK); err != nil {
		return nil, err
	}
	return &ast.ArrayLit{Token: tok, Elements: elements}, nil
}

// parsePostfix composes indexing, call, and assignment, in the order the
// Parser Contract describes: call only right after an Identifier primary,
// assignment only when the chain so far is an Identifier or IndexAccess.
func (p *Parser) parsePostfix(expr ast.Expression) (ast.Expression, error) {
	for {
		switch p.cur().Type {
		case token.LBRACK:
			idxTok := p.advance()
			index, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACK); err != nil {
				return nil, err
			}
			expr = &ast.IndexAccess{Token: idxTok, Target: expr, Index: index}

		case token.LPAREN:
			ident, ok := expr.(*ast.Ident)
			if !ok {
				return expr, nil
			}
			callTok := p.advance()
			args, err := p.parseArgList(token.RPAREN)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			expr = &ast.Call{Token: callTok, Name: ident.Name, Args: args}

		case token.ASSIGN:
			switch target := expr.(type) {
			case *ast.Ident:
				eqTok := p.advance()
				value, err := p.parseExpression(LOWEST)
				if err != nil {
					return nil, err
				}
				expr = &ast.Assign{Token: eqTok, Name: target.Name, Value: value}
			case *ast.IndexAccess:
				eqTok := p.advance()
				value, err := p.parseExpression(LOWEST)
				if err != nil {
					return nil, err
				}
				expr = &ast.IndexAssign{Token: eqTok, Target: target.Target, Index: target.Index, Value: value}
			default:
				return expr, nil
			}

		default:
			return expr, nil
		}
	}
}
