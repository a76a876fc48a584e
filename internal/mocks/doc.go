// Package mocks provides hand-rolled test doubles for the service and
// store interfaces.
package mocks
