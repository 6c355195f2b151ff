// Released under an MIT license. See LICENSE.

// Package escape hides escape sequences from the lexer.
//
// Escape replaces \\, \" and \n with private placeholder runes so that the
// lexer never sees a backslash-quoted delimiter. Restore turns placeholders
// back into the characters they stand for and is applied to the contents of
// string literals.
package escape

import "strings"

// Placeholder runes. Source text must not contain them.
const (
	Backslash = '\uff00'
	Quote     = '\uff01'
	Newline   = '\uff02'
)

//nolint:gochecknoglobals
var (
	escaper  = strings.NewReplacer(`\\`, string(Backslash), `\"`, string(Quote), `\n`, string(Newline))
	restorer = strings.NewReplacer(string(Backslash), `\`, string(Quote), `"`, string(Newline), "\n")
)

// Escape replaces each escape sequence in s with its placeholder.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Restore replaces each placeholder in s with the character it stands for.
func Restore(s string) string {
	return restorer.Replace(s)
}

// Unescape replaces each placeholder in s with the escape sequence it was
// created from. Unescape(Escape(s)) == s for any s without placeholders.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

//nolint:gochecknoglobals
var unescaper = strings.NewReplacer(string(Backslash), `\\`, string(Quote), `\"`, string(Newline), `\n`)
