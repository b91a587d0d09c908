// Package services provides domain services: business rules that span more
// than one aggregate and so belong to neither.
//
// The package includes:
//   - OrderPricer: builds order lines from products at their current price
package services
