// Package pointers provides helpers for pointer creation and conversions.
//
// Use this package to move between the comma-ok results of the helper packages and
// DTOs that model absence as a nil pointer.
package pointers
