// Package emit renders resolved constant sets as source text for a target language.
//
// Emitters are looked up by name in a registry that the built-in emitters fill
// from init(): "c" (.h), "asm" (.inc), "py" (.py) and "go" (.go). Every emitter
// receives one Unit per output file and writes the whole file, banner included.
// Emitters never resolve anything themselves: values arrive fully computed.
package emit
