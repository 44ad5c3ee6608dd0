// Package sdlquery selects a document's top-level tags by evaluating
// an expr-lang boolean expression against each tag's name, namespace,
// values, and attributes. It does not join across independently-parsed
// documents.
package sdlquery
