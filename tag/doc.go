// Package tag defines the SDL tag record — name, optional namespace,
// ordered values, unordered attributes, and ordered children — and its
// canonical serializer.
package tag
