// Package cli implements the property-info command tree.
package cli
