package ast

import "fmt"

// SourcePos mirrors the teacher's line/column pair (see
// internal/pkg/ast.Location.GetLineAndColumn) but is stored pre-computed
// instead of recovered from a rune buffer, since this pass never touches
// source text, only positions already attached by the parser.
type SourcePos struct {
	Line   int
	Column int
}

func (p SourcePos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceSpan is a start/end position pair within a named file.
type SourceSpan struct {
	Name  string
	Start SourcePos
	End   SourcePos
}

func (s SourceSpan) String() string {
	if s.Name == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s-%s", s.Name, s.Start, s.End)
}

// Comment is a leading or trailing comment line attached to a declaration.
type Comment struct {
	Text       string
	IsLineComment bool
}

// SourceAnn is the annotation every declaration and position-wrapped node
// carries: a span plus the comments immediately preceding it. §3's
// invariant "all synthesized references preserve the SourceAnn of the
// original declaration where possible and otherwise use a constant
// 'generated' source span" is implemented by GeneratedSourceAnn below.
type SourceAnn struct {
	Span     SourceSpan
	Comments []Comment
}

// GeneratedSourceAnn is the constant annotation used when a synthesized
// node cannot be sensibly tied to one input span. Synthesized
// declarations inherit the annotation of the class or instance that
// produced them; the synthesized TypeInstanceRef export entries carry
// GeneratedSourceAnn.
var GeneratedSourceAnn = SourceAnn{Span: SourceSpan{Name: "<generated>"}}

func (a SourceAnn) IsGenerated() bool {
	return a.Span.Name == "<generated>"
}
