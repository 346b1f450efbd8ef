// Package escape converts raw text to and from the Java-style escaped form
// used inside Groovy string literals.
//
// Encoding works on UTF-16 code units, the same units a JVM string holds:
//   - Code units >= 0x80 become \uXXXX (upper-case hex, always 4 digits).
//     Runes above U+FFFF therefore produce two escapes, one per surrogate.
//   - Backspace, tab, newline, form feed and carriage return use their
//     two-character escapes; every other control character becomes \u00XX.
//   - Double quote and backslash are always escaped.
//   - Single quote and forward slash are escaped only when Options asks for it.
//
// Decode is the inverse. It fails only on a malformed \u escape.
package escape
