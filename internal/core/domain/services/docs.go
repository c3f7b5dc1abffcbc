// Package services contains domain services that don't belong to a single
// aggregate. Currently this is the order identifier generator, which derives
// 256-bit collision-resistant ids from the creator address, an internal nonce
// and the creation timestamp.
package services
