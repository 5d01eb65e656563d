// Package archive moves state files aside under a timestamped name.
package archive
