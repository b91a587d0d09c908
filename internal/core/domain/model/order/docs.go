// Package order provides the Order aggregate of the back office.
//
// The package includes:
//   - Order: the aggregate root holding the customer, the current status, the
//     delivery location and the running total
//   - Detail: an order line for one product, with its quantity, the unit
//     price captured when the line was created and the derived subtotal
//   - DeliveryLocation: the free-text address orders are shipped to
//   - Reference: an identifier paired with a display name, used for the
//     customer, status and product an order points at
//
// Key business rules:
//   - A detail's subtotal is always quantity x unit price
//   - An order's total is always the sum of its details' subtotals, once the
//     details are attached through AddDetail
//   - A new order starts with a zero total and no details
//   - Quantities must be greater than zero
//   - Deleting an order soft-deletes its details as well
package order
