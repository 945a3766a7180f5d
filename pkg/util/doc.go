// Package util provides common utility functions and data structures
//
// This package includes the generic set implementation backing both the
// builder's working topping set and the finished product's copy of it
package util
