package text

import (
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

// segment reports this type for whitespace and punctuation segments.
const nonAlphaNumericChar = 0

// Token is a word token with its rune offset in the original text.
type Token struct {
	Text   string `json:"text"`
	Offset uint32 `json:"offset"`
}

// Tokenize splits text into word tokens using unicode word segmentation.
// Whitespace and punctuation are dropped; offsets count runes from the start
// of text so they stay stable across the CJK languages we handle.
func Tokenize(text string) ([]Token, error) {
	segmenter := segment.NewWordSegmenterDirect([]byte(text))

	var tokens []Token
	var position uint32
	for segmenter.Segment() {
		segmentBytes := segmenter.Bytes()
		if segmenter.Type() != nonAlphaNumericChar {
			tokens = append(tokens, Token{
				Text:   string(segmentBytes),
				Offset: position,
			})
		}
		position += uint32(utf8.RuneCount(segmentBytes))
	}
	if err := segmenter.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// CountTokens returns the number of word tokens in text.
func CountTokens(text string) (int, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return len(tokens), nil
}
