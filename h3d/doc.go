// Package h3d provides PatriciaList, the named collection used throughout
// H3D containers for bones, materials, meshes and the like. Items keep their
// order and are also reachable by name through an embedded patricia.Tree
// whose key order always matches the item order.
package h3d
