// Package ast defines the tagged tree produced by the Fluent syntax parser:
// resources, entries (messages, terms, comments, junk), patterns and their
// elements, and the expression grammar used inside placeables.
package ast

import "encoding/json"

// Kind is the discriminator every node carries, corresponding to the `type`
// field of the serialized AST (spec section 6).
type Kind string

const (
	KindResource          Kind = "Resource"
	KindIdentifier        Kind = "Identifier"
	KindComment           Kind = "Comment"
	KindGroupComment      Kind = "GroupComment"
	KindResourceComment   Kind = "ResourceComment"
	KindMessage           Kind = "Message"
	KindTerm              Kind = "Term"
	KindAttribute         Kind = "Attribute"
	KindPattern           Kind = "Pattern"
	KindTextElement       Kind = "TextElement"
	KindPlaceable         Kind = "Placeable"
	KindStringLiteral     Kind = "StringLiteral"
	KindNumberLiteral     Kind = "NumberLiteral"
	KindMessageReference  Kind = "MessageReference"
	KindTermReference     Kind = "TermReference"
	KindVariableReference Kind = "VariableReference"
	KindFunctionReference Kind = "FunctionReference"
	KindCallArguments     Kind = "CallArguments"
	KindNamedArgument     Kind = "NamedArgument"
	KindSelectExpression  Kind = "SelectExpression"
	KindVariant           Kind = "Variant"
	KindJunk              Kind = "Junk"
	KindAnnotation        Kind = "Annotation"
)

// Node is the super type every AST node (and the transient pattern-builder
// tokens internal to the parser) implements. The marker method is
// unexported: embedding Base is the only way to satisfy it, so a type
// declared outside this package is a Node only if it embeds Base.
type Node interface {
	node()
	Kind() Kind
}

// Span is a half-open [Start, End) byte range over the original source.
// Present on a node only when the parser is configured with span tracking
// enabled (spec section 6); otherwise the node's Span field is nil and is
// omitted from JSON entirely.
type Span struct {
	Start uint
	End   uint
}

// MarshalJSON renders a Span as {"type":"Span","start":...,"end":...}, the
// shape the external fixture comparator expects.
func (s *Span) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Type  string `json:"type"`
		Start uint   `json:"start"`
		End   uint   `json:"end"`
	}{Type: "Span", Start: s.Start, End: s.End})
}

// Base is embedded by every concrete node type. It carries the discriminator
// tag and the optional span, and supplies the unexported marker method that
// seals the Node interface.
type Base struct {
	NodeKind Kind  `json:"type"`
	NodeSpan *Span `json:"span,omitempty"`
}

func (b Base) node() {}

// Kind returns the node's discriminator tag.
func (b Base) Kind() Kind { return b.NodeKind }

// SpanOf returns the node's span, or nil if span tracking was disabled.
func (b Base) SpanOf() *Span { return b.NodeSpan }
