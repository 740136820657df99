// Package services implements the driving port interfaces.
// Services contain the lookup logic and call driven ports for I/O.
//
// Services are pure Go with no CGO.
package services
