// Package squish contains the core components of squish, a small utility
// library for manipulating in-memory tabular data. This root package defines
// the types which are employed during regular use of the library, and is an
// excellent overview of squish's key concepts. Implementations live in the
// schema and table subpackages, and transformations live under operations.
package squish
