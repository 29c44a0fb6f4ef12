package text

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// nodes whose text content is never document text.
var disallowedNodes = map[string]struct{}{
	"area":     {},
	"audio":    {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"script":   {},
	"source":   {},
	"style":    {},
	"input":    {},
	"textarea": {},
	"video":    {},
}

// inline nodes whose boundaries do not break the surrounding text.
var nonBreakingNodes = map[string]struct{}{
	"span": {}, "sub": {}, "sup": {}, "b": {}, "del": {}, "i": {},
	"ins": {}, "mark": {}, "q": {}, "s": {}, "strike": {}, "strong": {},
	"u": {}, "big": {}, "small": {}, "a": {},
}

// StripHTML extracts the plain text of an HTML document. Converted papers
// arrive as HTML; the annotation pipeline needs the raw text with block
// boundaries turned into newlines so sentence-ish structure survives.
func StripHTML(r io.Reader) ([]byte, error) {
	tokenizer := html.NewTokenizer(r)

	var buf bytes.Buffer
	disallowedDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if err := tokenizer.Err(); err != io.EOF {
				return nil, err
			}
			return buf.Bytes(), nil
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := disallowedNodes[string(name)]; ok {
				disallowedDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := disallowedNodes[string(name)]; ok {
				if disallowedDepth > 0 {
					disallowedDepth--
				}
				continue
			}
			if _, ok := nonBreakingNodes[string(name)]; ok {
				continue
			}
			if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
				buf.WriteByte('\n')
			}
		case html.TextToken:
			if disallowedDepth > 0 {
				continue
			}
			buf.Write(tokenizer.Text())
		}
	}
}
