package symspell

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// wordPattern matches maximal runs of letters/digits, optionally continued
// across an embedded apostrophe (straight or curly). Underscore is a word
// separator, unlike Go's \w, so it is deliberately left out of the class.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['\x{2019}][\p{L}\p{N}]+)*`)

// acronymPattern matches an all-caps, no-lowercase token of length >= 2.
var acronymPattern = regexp.MustCompile(`^[A-Z0-9]{2,}$`)

// parseWords extracts word tokens from text. When preserveCase is false the
// text is lowercased before extraction.
func parseWords(text string, preserveCase bool) []string {
	if !preserveCase {
		text = strings.ToLower(text)
	}
	return wordPattern.FindAllString(text, -1)
}

// isAcronym reports whether word is entirely uppercase letters/digits and
// at least two characters long.
func isAcronym(word string) bool {
	return acronymPattern.MatchString(word)
}

// isNumeric reports whether every rune in word is a digit.
func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// transferCasingMatching transfers the casing of src onto dst position by
// position. src and dst must have the same rune length.
func transferCasingMatching(src, dst string) (string, error) {
	srcRunes := []rune(src)
	dstRunes := []rune(dst)
	if len(srcRunes) != len(dstRunes) {
		return "", fmt.Errorf("symspell: transferCasingMatching: length mismatch (%d != %d)", len(srcRunes), len(dstRunes))
	}
	out := make([]rune, len(dstRunes))
	for i, r := range srcRunes {
		if unicode.IsUpper(r) {
			out[i] = unicode.ToUpper(dstRunes[i])
		} else {
			out[i] = unicode.ToLower(dstRunes[i])
		}
	}
	return string(out), nil
}

// transferCasingSimilar transfers the casing pattern of src onto dst, which
// need not have the same length. dst is assumed lowercase. The alignment is
// computed as an LCS-based diff (via difflib.SequenceMatcher) between
// lower(src) and dst, walked opcode by opcode.
func transferCasingSimilar(src, dst string) string {
	if src == "" || dst == "" {
		return dst
	}

	srcOrig := []rune(src)
	srcLower := []rune(strings.ToLower(src))
	dstRunes := []rune(dst)

	matcher := difflib.NewMatcher(runesToTokens(srcLower), runesToTokens(dstRunes))

	var out []rune
	upper := false

	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			span := srcOrig[op.I1:op.I2]
			out = append(out, span...)
			if len(span) > 0 {
				upper = unicode.IsUpper(span[len(span)-1])
			}
		case 'd':
			if op.I2 > op.I1 {
				upper = unicode.IsUpper(srcOrig[op.I2-1])
			}
		case 'i':
			insertUpper := upper
			if op.I1 == 0 || (op.I1 > 0 && srcOrig[op.I1-1] == ' ') {
				if op.I1 < len(srcOrig) && unicode.IsUpper(srcOrig[op.I1]) {
					insertUpper = true
				}
			}
			for _, r := range dstRunes[op.J1:op.J2] {
				if insertUpper {
					out = append(out, unicode.ToUpper(r))
				} else {
					out = append(out, r)
				}
			}
			upper = insertUpper
		case 'r':
			srcSpan := srcOrig[op.I1:op.I2]
			dstSpan := dstRunes[op.J1:op.J2]
			if len(srcSpan) == len(dstSpan) {
				replaced, _ := transferCasingMatching(string(srcSpan), string(dstSpan))
				out = append(out, []rune(replaced)...)
				if len(srcSpan) > 0 {
					upper = unicode.IsUpper(srcSpan[len(srcSpan)-1])
				}
			} else {
				shorter := minInt(len(srcSpan), len(dstSpan))
				for k, r := range dstSpan {
					if k < shorter {
						upper = unicode.IsUpper(srcSpan[k])
					}
					if upper {
						out = append(out, unicode.ToUpper(r))
					} else {
						out = append(out, r)
					}
				}
			}
		}
	}

	return string(out)
}

func runesToTokens(runes []rune) []string {
	tokens := make([]string, len(runes))
	for i, r := range runes {
		tokens[i] = string(r)
	}
	return tokens
}
