// Package validator wraps struct validation behind a single-method interface.
//
// The concrete implementation is go-playground/validator v10 with English
// translations. Usecases depend on the interface so tests can swap it out.
package validator
