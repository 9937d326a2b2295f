// Package token defines the CSS token model shared by the lexer and parser.
// Invariants:
//   - Token.Text is the exact source lexeme (quotes, "url(" and "(" included).
//   - Token.Span matches Text exactly.
//   - Whitespace never appears in the token stream; it is folded into the
//     SpaceBefore flag of the following token.
//   - Comments are emitted as Comment tokens; the parser decides where they survive.
package token
