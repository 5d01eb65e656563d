// Package batch reads query files and resolves their lines concurrently.
package batch
