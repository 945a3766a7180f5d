// Package api defines the pizza data model: the closed set of toppings, the
// abstract Pizza product and the concrete products built from it
package api
