// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/workitem, domain/descriptor,
// domain/valueprovider, domain/validator). This root package holds the sentinel
// errors and the schema error type shared by all of them.
package domain
