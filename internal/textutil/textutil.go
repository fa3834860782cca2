// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil holds the pure text transforms used by the renderers:
// ANSI escape removal, fenced code blocks and fixed-width rewrapping.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscape matches a 7-bit C1 Fe sequence (ESC + one of @-Z \ ] ^ _) or a
// CSI sequence (ESC [ params* intermediates* final).
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// StripANSI returns text with every ANSI escape sequence removed. Removing a
// sequence can join a leftover ESC to the bytes after it, so passes repeat
// until nothing matches.
func StripANSI(text string) string {
	for strings.ContainsRune(text, '\x1b') {
		next := ansiEscape.ReplaceAllString(text, "")
		if next == text {
			break
		}
		text = next
	}
	return text
}

// fence is the Markdown code fence delimiter.
const fence = "```"

// CodeBlock wraps body in a fenced block tagged with lang. The body is not
// escaped: a body containing its own fence closes the block early.
func CodeBlock(body, lang string) string {
	return strings.Join([]string{fence + lang, body, fence}, "\n")
}

// Rewrap inserts a newline after every complete run of width characters.
// Newlines already in text count toward the run, matching a single global
// substitution of `(?s)(.{width})` with `$1\n`. A width of zero or less returns
// text unchanged. Bytes are copied as-is, including invalid UTF-8, each
// invalid byte counting as one character.
func Rewrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/width)
	n := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
		n++
		if n == width {
			b.WriteByte('\n')
			n = 0
		}
	}
	return b.String()
}

// NonEmptyLines splits text on newlines and drops empty lines.
func NonEmptyLines(text string) []string {
	parts := strings.Split(text, "\n")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
