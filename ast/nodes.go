package ast

// Resource is the root node: an ordered sequence of entries. Its span (when
// enabled) covers the whole input.
type Resource struct {
	Base
	Body []Node `json:"body"` // Message | Term | Comment | GroupComment | ResourceComment | Junk
}

// Identifier is a bare name, e.g. a message id, an attribute key, or a
// variable/function/term name.
type Identifier struct {
	Base
	Name string `json:"name"`
}

// Comment is a standalone (or attached) `#`-level comment.
type Comment struct {
	Base
	Content string `json:"content"`
}

// GroupComment is a `##`-level comment. Never attaches to an entry.
type GroupComment struct {
	Base
	Content string `json:"content"`
}

// ResourceComment is a `###`-level comment. Never attaches to an entry.
type ResourceComment struct {
	Base
	Content string `json:"content"`
}

// Message is a top-level `identifier = ...` entry. At least one of Value or
// Attributes must be present.
type Message struct {
	Base
	ID         *Identifier  `json:"id"`
	Value      *Pattern     `json:"value"`
	Attributes []*Attribute `json:"attributes"`
	Comment    *Comment     `json:"comment"`
}

// Term is a top-level `-identifier = ...` entry. Value is required.
type Term struct {
	Base
	ID         *Identifier  `json:"id"`
	Value      *Pattern     `json:"value"`
	Attributes []*Attribute `json:"attributes"`
	Comment    *Comment     `json:"comment"`
}

// Attribute is a `.key = value` child of a Message or Term.
type Attribute struct {
	Base
	ID    *Identifier `json:"id"`
	Value *Pattern    `json:"value"`
}

// Pattern is the value side of a message, term, attribute, or variant: a
// dedented, alternating sequence of TextElement and Placeable nodes with no
// two adjacent TextElements and no empty leading/trailing TextElement.
type Pattern struct {
	Base
	Elements []Node `json:"elements"` // TextElement | Placeable
}

// TextElement is a run of literal pattern text.
type TextElement struct {
	Base
	Value string `json:"value"`
}

// Placeable is a `{ ... }` embedded expression inside a pattern.
type Placeable struct {
	Base
	Expression Node `json:"expression"` // InlineExpression | SelectExpression
}

// StringLiteral is a quoted string literal. Its Value retains escape
// sequences in raw, still-encoded form; see parser.Unescape to decode them.
type StringLiteral struct {
	Base
	Value string `json:"value"`
}

// NumberLiteral is a numeric literal, preserved verbatim as written.
type NumberLiteral struct {
	Base
	Value string `json:"value"`
}

// MessageReference is a reference to another message, optionally to one of
// its attributes.
type MessageReference struct {
	Base
	ID        *Identifier `json:"id"`
	Attribute *Identifier `json:"attribute"`
}

// TermReference is a reference to a term, optionally to one of its
// attributes, optionally with call arguments.
type TermReference struct {
	Base
	ID        *Identifier    `json:"id"`
	Attribute *Identifier    `json:"attribute"`
	Arguments *CallArguments `json:"arguments"`
}

// VariableReference is a reference to an external `$variable`.
type VariableReference struct {
	Base
	ID *Identifier `json:"id"`
}

// FunctionReference is a call to an upper-case function, e.g. `NUMBER(...)`.
type FunctionReference struct {
	Base
	ID        *Identifier    `json:"id"`
	Arguments *CallArguments `json:"arguments"`
}

// CallArguments holds the positional and named arguments passed to a term or
// function reference. All positional arguments precede all named ones, and
// named argument names are unique.
type CallArguments struct {
	Base
	Positional []Node           `json:"positional"` // InlineExpression
	Named      []*NamedArgument `json:"named"`
}

// NamedArgument is a `name: literal` call argument.
type NamedArgument struct {
	Base
	Name  *Identifier `json:"name"`
	Value Node        `json:"value"` // StringLiteral | NumberLiteral
}

// SelectExpression discriminates on a selector expression over a set of
// variants, exactly one of which is the default.
type SelectExpression struct {
	Base
	Selector Node       `json:"selector"` // InlineExpression
	Variants []*Variant `json:"variants"`
}

// Variant is one `[key] value` (or `*[key] value` for the default) branch of
// a SelectExpression.
type Variant struct {
	Base
	Key     Node     `json:"key"` // Identifier | NumberLiteral
	Value   *Pattern `json:"value"`
	Default bool     `json:"default"`
}

// Annotation is a single diagnostic attached to a Junk entry: an error code,
// its format arguments, a human-readable message, and a point span pinned at
// the byte index where the error was observed.
type Annotation struct {
	Base
	Code    string   `json:"code"`
	Args    []string `json:"arguments"`
	Message string   `json:"message"`
}

// Junk is a contiguous span of source that failed to parse as any entry,
// preserved verbatim together with the diagnostics produced while trying.
type Junk struct {
	Base
	Annotations []*Annotation `json:"annotations"`
	Content     string        `json:"content"`
}
