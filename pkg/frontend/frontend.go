package frontend

// ParseSource runs the full front-end pipeline on src: scan to tokens, then
// parse to a Program. Either stage's error (*LexicalError or *SyntaxError)
// propagates unchanged; there is no partial tree on failure.
func ParseSource(src string) (*Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
