// Package encode renders tag trees to formats beyond the SDL grammar
// itself: colorized terminal output and YAML interchange.
package encode
