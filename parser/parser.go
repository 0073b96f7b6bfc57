package parser

import (
	"math"
	"strings"

	"github.com/hlubek/ftlparse/ast"
)

// Parser drives the recursive-descent Fluent grammar over a stream, building
// an ast.Resource entry by entry and packaging anything that fails to parse
// as ast.Junk rather than aborting the whole resource.
type Parser struct {
	str *stream
	cfg config
}

// New returns a Parser ready to walk source.
func New(source string, opts ...Option) *Parser {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{str: newStream(source), cfg: cfg}
}

// span returns a *ast.Span for [start, end) when span tracking is enabled,
// nil otherwise.
func (p *Parser) span(start, end int) *ast.Span {
	if !p.cfg.withSpans {
		return nil
	}
	return &ast.Span{Start: uint(start), End: uint(end)}
}

// Parse walks the whole stream and returns the resulting Resource. It never
// returns an error: every grammar failure is resynchronized past and
// recorded as an ast.Junk entry instead.
func (p *Parser) Parse() *ast.Resource {
	p.str.skipBlankBlock()

	var body []ast.Node
	var lastComment *ast.Comment

	for !p.str.atEnd() {
		entry := p.parseEntryOrJunk()
		blankBlock := p.str.skipBlankBlock()

		if comment, ok := entry.(*ast.Comment); ok && blankBlock == "" && !p.str.atEnd() {
			lastComment = comment
			continue
		}

		if lastComment != nil {
			switch e := entry.(type) {
			case *ast.Message:
				e.Comment = lastComment
				if e.NodeSpan != nil && lastComment.NodeSpan != nil {
					e.NodeSpan.Start = lastComment.NodeSpan.Start
				}
			case *ast.Term:
				e.Comment = lastComment
				if e.NodeSpan != nil && lastComment.NodeSpan != nil {
					e.NodeSpan.Start = lastComment.NodeSpan.Start
				}
			default:
				body = append(body, lastComment)
			}
			lastComment = nil
		}

		body = append(body, entry)
	}
	if lastComment != nil {
		body = append(body, lastComment)
	}

	return &ast.Resource{
		Base: ast.Base{NodeKind: ast.KindResource, NodeSpan: p.span(0, len(p.str.source))},
		Body: body,
	}
}

// parseEntryOrJunk parses one entry; on a grammar error it resynchronizes at
// the next plausible entry start and returns an ast.Junk in its place.
func (p *Parser) parseEntryOrJunk() ast.Node {
	start := p.str.pos()

	entry, err := p.parseEntry()
	if err == nil {
		if lineErr := p.str.expectLineEnd(); lineErr == nil {
			return entry
		} else {
			err = lineErr
		}
	}

	errIndex := p.str.pos()
	var code string
	var args []string
	var message string
	if pe, ok := err.(*Error); ok {
		errIndex = int(pe.Index)
		code = pe.Code
		args = pe.Args
		message = pe.Message()
	}

	p.str.skipToNextEntryStart(start)
	end := p.str.pos()

	if errIndex < start {
		errIndex = start
	}
	if errIndex >= end {
		errIndex = end - 1
		if errIndex < start {
			errIndex = start
		}
	}

	annotation := &ast.Annotation{
		Base:    ast.Base{NodeKind: ast.KindAnnotation, NodeSpan: p.span(errIndex, errIndex)},
		Code:    code,
		Args:    args,
		Message: message,
	}
	return &ast.Junk{
		Base:        ast.Base{NodeKind: ast.KindJunk, NodeSpan: p.span(start, end)},
		Annotations: []*ast.Annotation{annotation},
		Content:     p.str.slice(start, end),
	}
}

func (p *Parser) parseEntry() (ast.Node, error) {
	switch {
	case p.str.current() == '#':
		return p.parseComment()
	case p.str.current() == '-':
		return p.parseTerm()
	case p.str.isIdentifierStart():
		return p.parseMessage()
	default:
		return nil, newError(E0002, uint(p.str.pos()))
	}
}

// --- comments ---------------------------------------------------------------

func (p *Parser) parseComment() (ast.Node, error) {
	start := p.str.pos()

	count := 0
	for p.str.current() == '#' && count < 3 {
		p.str.advance()
		count++
	}
	level := count - 1

	var content strings.Builder
	for {
		c := p.str.current()
		if c != EOL && c != EOF {
			if err := p.str.expectChar(' '); err != nil {
				return nil, err
			}
			for {
				c := p.str.current()
				if c == EOL || c == EOF {
					break
				}
				content.WriteRune(p.str.advance())
			}
		}
		if !p.str.isNextLineComment(level) {
			break
		}
		p.str.advance() // EOL
		for i := 0; i <= level; i++ {
			p.str.advance() // '#'
		}
		content.WriteRune(EOL)
	}

	end := p.str.pos()
	sp := p.span(start, end)
	switch level {
	case 0:
		return &ast.Comment{Base: ast.Base{NodeKind: ast.KindComment, NodeSpan: sp}, Content: content.String()}, nil
	case 1:
		return &ast.GroupComment{Base: ast.Base{NodeKind: ast.KindGroupComment, NodeSpan: sp}, Content: content.String()}, nil
	default:
		return &ast.ResourceComment{Base: ast.Base{NodeKind: ast.KindResourceComment, NodeSpan: sp}, Content: content.String()}, nil
	}
}

// --- messages & terms --------------------------------------------------------

func (p *Parser) parseMessage() (ast.Node, error) {
	start := p.str.pos()
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.str.skipBlankInline()
	if err := p.str.expectChar('='); err != nil {
		return nil, err
	}
	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	attributes, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if value == nil && len(attributes) == 0 {
		return nil, newError(E0005, uint(start), id.Name)
	}
	return &ast.Message{
		Base:       ast.Base{NodeKind: ast.KindMessage, NodeSpan: p.span(start, p.str.pos())},
		ID:         id,
		Value:      value,
		Attributes: attributes,
	}, nil
}

func (p *Parser) parseTerm() (ast.Node, error) {
	start := p.str.pos()
	if err := p.str.expectChar('-'); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.str.skipBlankInline()
	if err := p.str.expectChar('='); err != nil {
		return nil, err
	}
	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(E0006, uint(start), id.Name)
	}
	attributes, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	return &ast.Term{
		Base:       ast.Base{NodeKind: ast.KindTerm, NodeSpan: p.span(start, p.str.pos())},
		ID:         id,
		Value:      value,
		Attributes: attributes,
	}, nil
}

func (p *Parser) parseAttributes() ([]*ast.Attribute, error) {
	var attrs []*ast.Attribute
	for {
		p.str.resetPeek(0)
		p.str.peekBlank()
		if p.str.peekCurrent() != '.' {
			p.str.resetPeek(0)
			break
		}
		p.str.skipToPeek()
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func (p *Parser) parseAttribute() (*ast.Attribute, error) {
	start := p.str.pos()
	if err := p.str.expectChar('.'); err != nil {
		return nil, err
	}
	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	p.str.skipBlankInline()
	if err := p.str.expectChar('='); err != nil {
		return nil, err
	}
	value, err := p.parseOptionalPattern()
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(E0012, uint(start))
	}
	return &ast.Attribute{
		Base:  ast.Base{NodeKind: ast.KindAttribute, NodeSpan: p.span(start, p.str.pos())},
		ID:    id,
		Value: value,
	}, nil
}

// --- patterns -----------------------------------------------------------------

// indentNode is a transient element used only while building a Pattern's
// element list; it never survives into the final tree (it is stripped to
// nothing, merged into a neighboring TextElement, or promoted to one).
type indentNode struct {
	ast.Base
	Value string
}

// parseOptionalPattern decides whether a value is present at all, and if so
// whether it starts inline (on the same line as '=') or as a block (on
// following indented lines, whose smallest shared indent is later stripped).
func (p *Parser) parseOptionalPattern() (*ast.Pattern, error) {
	p.str.resetPeek(0)
	p.str.peekBlankInline()
	first := p.str.peekCurrent()

	if first != EOL && first != EOF {
		p.str.skipToPeek()
		return p.parsePattern(false)
	}
	if first == EOF {
		p.str.resetPeek(0)
		return nil, nil
	}

	// first is EOL: peek past the blank block, then see whether the first
	// non-blank line continues the pattern as a block value.
	p.str.peekBlankBlock()
	inlineIndent := p.str.peekBlankInline()
	next := p.str.peekCurrent()
	if next != '{' && (len(inlineIndent) == 0 || anyOf(next, '}', '.', '[', '*')) {
		p.str.resetPeek(0)
		return nil, nil
	}

	// Commit only up to the start of that line; parsePattern(true) consumes
	// its leading indent itself so it can seed common_indent from it.
	p.str.resetPeek(0)
	p.str.peekBlankBlock()
	p.str.skipToPeek()
	return p.parsePattern(true)
}

func (p *Parser) parsePattern(block bool) (*ast.Pattern, error) {
	start := p.str.pos()
	commonIndent := math.MaxInt

	var elements []ast.Node
	if block {
		indentStart := p.str.pos()
		blank := p.str.skipBlankInline()
		commonIndent = len(blank)
		elements = append(elements, &indentNode{
			Base:  ast.Base{NodeSpan: p.span(indentStart, p.str.pos())},
			Value: blank,
		})
	}

loop:
	for !p.str.atEnd() {
		switch p.str.current() {
		case '{':
			placeable, err := p.parsePlaceable()
			if err != nil {
				return nil, err
			}
			elements = append(elements, placeable)
		case '}':
			return nil, newError(E0027, uint(p.str.pos()), "}")
		case EOL:
			indentStart := p.str.pos()
			p.str.resetPeek(0)
			blankBlock := p.str.peekBlankBlock()
			inlineIndent := p.str.peekBlankInline()
			first := p.str.peekCurrent()
			if first != '{' && (len(inlineIndent) == 0 || anyOf(first, '}', '.', '[', '*')) {
				p.str.resetPeek(0)
				break loop
			}
			if len(inlineIndent) < commonIndent {
				commonIndent = len(inlineIndent)
			}
			p.str.skipToPeek()
			elements = append(elements, &indentNode{
				Base:  ast.Base{NodeSpan: p.span(indentStart, p.str.pos())},
				Value: blankBlock + inlineIndent,
			})
		default:
			text, err := p.parseText()
			if err != nil {
				return nil, err
			}
			elements = append(elements, text)
		}
	}

	trimmed := dedentPatternElements(elements, commonIndent)
	return &ast.Pattern{
		Base:     ast.Base{NodeKind: ast.KindPattern, NodeSpan: p.span(start, p.str.pos())},
		Elements: trimmed,
	}, nil
}

// dedentPatternElements strips the shared leading indentation from every
// Indent element, merges adjacent text, promotes any surviving Indent with
// no preceding text to a TextElement in its own right, and trims trailing
// whitespace from the pattern's final TextElement.
func dedentPatternElements(elements []ast.Node, commonIndent int) []ast.Node {
	if commonIndent == math.MaxInt {
		commonIndent = 0
	}

	trimmed := make([]ast.Node, 0, len(elements))
	for _, el := range elements {
		if pl, ok := el.(*ast.Placeable); ok {
			trimmed = append(trimmed, pl)
			continue
		}

		var value string
		var span *ast.Span
		if in, ok := el.(*indentNode); ok {
			cut := len(in.Value) - commonIndent
			if cut < 0 {
				cut = 0
			}
			in.Value = in.Value[:cut]
			if in.Value == "" {
				continue
			}
			value = in.Value
			span = in.NodeSpan
		} else if te, ok := el.(*ast.TextElement); ok {
			value = te.Value
			span = te.NodeSpan
		}

		if len(trimmed) > 0 {
			if prev, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
				prev.Value += value
				if prev.NodeSpan != nil && span != nil {
					prev.NodeSpan.End = span.End
				}
				continue
			}
		}

		trimmed = append(trimmed, &ast.TextElement{
			Base:  ast.Base{NodeKind: ast.KindTextElement, NodeSpan: span},
			Value: value,
		})
	}

	if len(trimmed) > 0 {
		if last, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
			last.Value = strings.TrimRight(last.Value, " \t\n\r")
			if last.Value == "" {
				trimmed = trimmed[:len(trimmed)-1]
			}
		}
	}
	return trimmed
}

func (p *Parser) parseText() (*ast.TextElement, error) {
	start := p.str.pos()
	var sb strings.Builder
	for !p.str.atEnd() {
		c := p.str.current()
		if c == '{' || c == '}' || c == EOL {
			break
		}
		sb.WriteRune(p.str.advance())
	}
	return &ast.TextElement{
		Base:  ast.Base{NodeKind: ast.KindTextElement, NodeSpan: p.span(start, p.str.pos())},
		Value: sb.String(),
	}, nil
}

// --- placeables & expressions -------------------------------------------------

func (p *Parser) parsePlaceable() (*ast.Placeable, error) {
	start := p.str.pos()
	if err := p.str.expectChar('{'); err != nil {
		return nil, err
	}
	p.str.skipBlank()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.str.expectChar('}'); err != nil {
		return nil, err
	}
	return &ast.Placeable{
		Base:       ast.Base{NodeKind: ast.KindPlaceable, NodeSpan: p.span(start, p.str.pos())},
		Expression: expr,
	}, nil
}

func (p *Parser) peekIsArrow() bool {
	p.str.resetPeek(0)
	if p.str.peekCurrent() != '-' {
		p.str.resetPeek(0)
		return false
	}
	p.str.peekNext()
	arrow := p.str.peekCurrent() == '>'
	p.str.resetPeek(0)
	return arrow
}

func (p *Parser) parseExpression() (ast.Node, error) {
	start := p.str.pos()
	selector, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}
	p.str.skipBlank()

	if !p.peekIsArrow() {
		if term, ok := selector.(*ast.TermReference); ok && term.Attribute != nil {
			return nil, newError(E0019, uint(p.str.pos()))
		}
		return selector, nil
	}

	switch sel := selector.(type) {
	case *ast.MessageReference:
		if sel.Attribute == nil {
			return nil, newError(E0016, uint(start))
		}
		return nil, newError(E0018, uint(start))
	case *ast.TermReference:
		if sel.Attribute == nil {
			return nil, newError(E0017, uint(start))
		}
	case *ast.Placeable:
		return nil, newError(E0029, uint(start))
	}

	p.str.advance() // '-'
	p.str.advance() // '>'
	p.str.skipBlankInline()
	if err := p.str.expectLineEnd(); err != nil {
		return nil, err
	}
	variants, err := p.parseVariants()
	if err != nil {
		return nil, err
	}
	return &ast.SelectExpression{
		Base:     ast.Base{NodeKind: ast.KindSelectExpression, NodeSpan: p.span(start, p.str.pos())},
		Selector: selector,
		Variants: variants,
	}, nil
}

func (p *Parser) parseInlineExpression() (ast.Node, error) {
	start := p.str.pos()
	switch {
	case p.str.current() == '{':
		return p.parsePlaceable()
	case p.str.isNumberStart():
		return p.parseNumber()
	case p.str.current() == '"':
		return p.parseString()
	case p.str.current() == '$':
		p.str.advance()
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.VariableReference{
			Base: ast.Base{NodeKind: ast.KindVariableReference, NodeSpan: p.span(start, p.str.pos())},
			ID:   id,
		}, nil
	case p.str.current() == '-':
		p.str.advance()
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		var attr *ast.Identifier
		if p.str.current() == '.' {
			p.str.advance()
			attr, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
		}
		var args *ast.CallArguments
		p.str.resetPeek(0)
		p.str.peekBlank()
		if p.str.peekCurrent() == '(' {
			p.str.skipToPeek()
			args, err = p.parseCallArguments()
			if err != nil {
				return nil, err
			}
		} else {
			p.str.resetPeek(0)
		}
		return &ast.TermReference{
			Base:      ast.Base{NodeKind: ast.KindTermReference, NodeSpan: p.span(start, p.str.pos())},
			ID:        id,
			Attribute: attr,
			Arguments: args,
		}, nil
	case p.str.isIdentifierStart():
		idStart := p.str.pos()
		id, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		p.str.resetPeek(0)
		p.str.peekBlank()
		if p.str.peekCurrent() == '(' {
			if hasLowercase(id.Name) {
				return nil, newError(E0008, uint(idStart))
			}
			p.str.skipToPeek()
			args, err := p.parseCallArguments()
			if err != nil {
				return nil, err
			}
			return &ast.FunctionReference{
				Base:      ast.Base{NodeKind: ast.KindFunctionReference, NodeSpan: p.span(start, p.str.pos())},
				ID:        id,
				Arguments: args,
			}, nil
		}
		p.str.resetPeek(0)
		var attr *ast.Identifier
		if p.str.current() == '.' {
			p.str.advance()
			attr, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
		}
		return &ast.MessageReference{
			Base:      ast.Base{NodeKind: ast.KindMessageReference, NodeSpan: p.span(start, p.str.pos())},
			ID:        id,
			Attribute: attr,
		}, nil
	default:
		return nil, newError(E0028, uint(start))
	}
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

func (p *Parser) parseCallArguments() (*ast.CallArguments, error) {
	start := p.str.pos()
	var positional []ast.Node
	var named []*ast.NamedArgument
	seen := map[string]bool{}

	if err := p.str.expectChar('('); err != nil {
		return nil, err
	}
	p.str.skipBlank()

	for p.str.current() != ')' {
		argStart := p.str.pos()
		arg, err := p.parseCallArgument()
		if err != nil {
			return nil, err
		}
		if na, ok := arg.(*ast.NamedArgument); ok {
			if seen[na.Name.Name] {
				return nil, newError(E0022, uint(argStart), na.Name.Name)
			}
			seen[na.Name.Name] = true
			named = append(named, na)
		} else {
			if len(named) > 0 {
				return nil, newError(E0021, uint(argStart))
			}
			positional = append(positional, arg)
		}
		p.str.skipBlank()
		if p.str.current() == ',' {
			p.str.advance()
			p.str.skipBlank()
			continue
		}
		break
	}

	if err := p.str.expectChar(')'); err != nil {
		return nil, err
	}
	return &ast.CallArguments{
		Base:       ast.Base{NodeKind: ast.KindCallArguments, NodeSpan: p.span(start, p.str.pos())},
		Positional: positional,
		Named:      named,
	}, nil
}

func (p *Parser) parseCallArgument() (ast.Node, error) {
	start := p.str.pos()
	expr, err := p.parseInlineExpression()
	if err != nil {
		return nil, err
	}
	p.str.skipBlank()
	if p.str.current() != ':' {
		return expr, nil
	}
	msgRef, ok := expr.(*ast.MessageReference)
	if !ok || msgRef.Attribute != nil {
		return nil, newError(E0009, uint(start))
	}
	p.str.advance() // ':'
	p.str.skipBlank()
	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.NamedArgument{
		Base:  ast.Base{NodeKind: ast.KindNamedArgument, NodeSpan: p.span(start, p.str.pos())},
		Name:  msgRef.ID,
		Value: value,
	}, nil
}

// --- select expressions --------------------------------------------------------

func (p *Parser) parseVariants() ([]*ast.Variant, error) {
	start := p.str.pos()
	var variants []*ast.Variant
	hasDefault := false

	p.str.skipBlank()
	for p.str.isVariantStart() {
		variantStart := p.str.pos()
		isDefault := false
		if p.str.current() == '*' {
			if hasDefault {
				return nil, newError(E0015, uint(variantStart))
			}
			hasDefault = true
			isDefault = true
			p.str.advance()
		}
		if err := p.str.expectChar('['); err != nil {
			return nil, err
		}
		p.str.skipBlank()
		key, err := p.parseVariantKey()
		if err != nil {
			return nil, err
		}
		p.str.skipBlank()
		if err := p.str.expectChar(']'); err != nil {
			return nil, err
		}
		pattern, err := p.parseOptionalPattern()
		if err != nil {
			return nil, err
		}
		if pattern == nil {
			return nil, newError(E0012, uint(variantStart))
		}
		variants = append(variants, &ast.Variant{
			Base:    ast.Base{NodeKind: ast.KindVariant, NodeSpan: p.span(variantStart, p.str.pos())},
			Key:     key,
			Value:   pattern,
			Default: isDefault,
		})
		if err := p.str.expectLineEnd(); err != nil {
			return nil, err
		}
		p.str.skipBlank()
	}

	if len(variants) == 0 {
		return nil, newError(E0011, uint(start))
	}
	if !hasDefault {
		return nil, newError(E0010, uint(start))
	}
	return variants, nil
}

func (p *Parser) parseVariantKey() (ast.Node, error) {
	if p.str.current() == EOL || p.str.atEnd() {
		return nil, newError(E0013, uint(p.str.pos()))
	}
	if p.str.isNumberStart() {
		return p.parseNumber()
	}
	return p.parseIdentifier()
}

// --- literals & identifiers ----------------------------------------------------

func (p *Parser) parseLiteral() (ast.Node, error) {
	if p.str.isNumberStart() {
		return p.parseNumber()
	}
	if p.str.current() == '"' {
		return p.parseString()
	}
	return nil, newError(E0014, uint(p.str.pos()))
}

func (p *Parser) parseNumber() (*ast.NumberLiteral, error) {
	start := p.str.pos()
	var sb strings.Builder
	if p.str.current() == '-' {
		sb.WriteRune(p.str.advance())
	}
	first, ok := p.str.takeDigit()
	if !ok {
		return nil, newError(E0004, uint(p.str.pos()), "0-9")
	}
	sb.WriteRune(first)
	for {
		d, ok := p.str.takeDigit()
		if !ok {
			break
		}
		sb.WriteRune(d)
	}
	if p.str.current() == '.' {
		sb.WriteRune(p.str.advance())
		d0, ok := p.str.takeDigit()
		if !ok {
			return nil, newError(E0004, uint(p.str.pos()), "0-9")
		}
		sb.WriteRune(d0)
		for {
			d, ok := p.str.takeDigit()
			if !ok {
				break
			}
			sb.WriteRune(d)
		}
	}
	return &ast.NumberLiteral{
		Base:  ast.Base{NodeKind: ast.KindNumberLiteral, NodeSpan: p.span(start, p.str.pos())},
		Value: sb.String(),
	}, nil
}

func (p *Parser) parseString() (*ast.StringLiteral, error) {
	start := p.str.pos()
	if err := p.str.expectChar('"'); err != nil {
		return nil, err
	}
	var sb strings.Builder
	for {
		c := p.str.current()
		if c == '"' || c == EOF {
			break
		}
		if c == EOL {
			return nil, newError(E0020, uint(p.str.pos()))
		}
		if c == '\\' {
			seq, err := p.parseEscapeSequence()
			if err != nil {
				return nil, err
			}
			sb.WriteString(seq)
			continue
		}
		sb.WriteRune(p.str.advance())
	}
	if err := p.str.expectChar('"'); err != nil {
		return nil, err
	}
	return &ast.StringLiteral{
		Base:  ast.Base{NodeKind: ast.KindStringLiteral, NodeSpan: p.span(start, p.str.pos())},
		Value: sb.String(),
	}, nil
}

func (p *Parser) parseEscapeSequence() (string, error) {
	if err := p.str.expectChar('\\'); err != nil {
		return "", err
	}
	switch p.str.current() {
	case '\\':
		p.str.advance()
		return `\\`, nil
	case '"':
		p.str.advance()
		return `\"`, nil
	case 'u':
		return p.parseUnicodeEscapeSequence(4)
	case 'U':
		return p.parseUnicodeEscapeSequence(6)
	default:
		return "", newError(E0025, uint(p.str.pos()))
	}
}

func (p *Parser) parseUnicodeEscapeSequence(n int) (string, error) {
	marker := p.str.advance()
	raw := "\\" + string(marker)
	for i := 0; i < n; i++ {
		d, ok := p.str.takeHexDigit()
		if !ok {
			return "", newError(E0026, uint(p.str.pos()))
		}
		raw += string(d)
	}
	return raw, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	start := p.str.pos()
	first, err := p.str.takeIDStart()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		c, ok := p.str.takeIDChar()
		if !ok {
			break
		}
		sb.WriteRune(c)
	}
	return &ast.Identifier{
		Base: ast.Base{NodeKind: ast.KindIdentifier, NodeSpan: p.span(start, p.str.pos())},
		Name: sb.String(),
	}, nil
}
