// Package validation assembles and runs the validators for a work item.
//
// The Composer turns the work item's current property descriptors into an
// ordered list of validators: an entity-level Completeness validator first,
// then, per property in declaration order, the validators implied by its
// editability, its kind, its declared validator descriptors, and its value
// provider. The Manager runs that list and concatenates the findings into a
// single report whose order is the composition order, whether validators run
// sequentially or in parallel.
package validation
