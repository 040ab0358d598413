// Package rmp implements the restricted master problem (component P of
// spec.md §4.5): a growing set-covering LP over accepted routes, one
// binary/continuous variable per route and one covering constraint per
// customer, built atop package lpsolver's abstract Backend.
package rmp
