// Package services contains the core business logic, wired to the
// outside world through the driven ports.
package services
