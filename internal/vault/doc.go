// Package vault implements the tree-mutation core: resolving a
// slash-delimited group path, creating the missing part of the path,
// generating collision-free identifiers, and assembling new credential
// entries. All mutation goes through this package; on any failure the
// tree is left exactly as it was.
package vault
