// Package defaults centralizes timeout and request-limit constants shared
// across calcd components, keeping transport tuning in one place.
package defaults
