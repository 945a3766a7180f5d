// Package builder provides fluent builders for the pizzas defined in api
//
// Builder is embedded by every concrete builder and bound to it with Init,
// which lets its chaining methods hand back the concrete builder type. Each
// concrete builder's Build returns its own concrete pizza type
package builder
