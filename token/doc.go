// Package token turns the text of one SDL logical line into a
// sequence of tokens: identifiers, punctuation, and the ten literal
// families, including the multi-line continuation rules for quoted
// strings, back-quoted strings, binary literals, and block comments.
package token
