// Package kernel provides the shared value objects of the back office domain.
//
// Every value object follows the same rules:
//   - fields are unexported and there are no setters
//   - construction goes through a NewX function that validates and normalizes
//     the raw input (trimmed, rounded, lower-cased depending on the type)
//   - Validate reports values that were declared as zero values instead of
//     being constructed
//   - IsEqual compares normalized values, never identity
//
// The package includes:
//   - UUID, Name, Email, Phone, Description: identity and contact data
//   - Price: two-decimal money amounts backed by shopspring/decimal
//   - Date, Boolean: timestamps and strict booleans
//   - Password, PasswordCipher: AES-CBC encrypted credentials
//   - Username, Host, MAC, Port: infrastructure and login identifiers
//   - ImageURL: product image links
//   - Lifecycle, Actor, FieldChange: audit data shared by every entity
//
// Failures are reported with the field-level errors of internal/pkg/errs, which
// the HTTP boundary renders as 422 responses.
package kernel
