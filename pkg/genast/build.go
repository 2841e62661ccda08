package genast

// TextSeq wraps a plain string in a single-element Node sequence, the common
// case for a parameter or identifier made of one literal run.
func TextSeq(value string) []Node {
	return []Node{NewText(value)}
}

// Simple constructs a Content node whose identifier and every parameter are
// plain literal text, with no nested sub-expressions. This covers the large
// majority of real-world generator expressions and is the convenience used
// throughout this module's own test fixtures and by the synthesized
// sub-expressions the TARGET_PROPERTY operator builds for transitive
// propagation (see internal/genops/targetproperty.go).
func Simple(ident string, params ...string) *Content {
	paramSeqs := make([][]Node, len(params))
	for i, p := range params {
		paramSeqs[i] = TextSeq(p)
	}
	return NewContent(TextSeq(ident), paramSeqs)
}
