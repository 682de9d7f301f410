/*
Package domain contains the core types shared across the recast engine:
capture sets, field specifications, scalar kinds, decoded records, the error
taxonomy, and the lifecycle hook contracts.

It has no dependencies on the matching or assembly layers, so adapters and
hosts can depend on it without pulling in the engine itself.
*/
package domain
