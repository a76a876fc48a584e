// Package service contains the application services that orchestrate
// domain logic between the HTTP layer and the stores.
package service
