// Package metadata models the structured record embedded inside packaged
// artifacts and owns its serialization contract.
//
// The record is a closed set of typed fields plus one nested media map; it is
// serialized as compact JSON with "<" escaped so it can live verbatim inside
// an XML text node. Deserialize is the exact inverse of Serialize, and Merge
// applies partial updates while shallow-merging media references key-by-key.
package metadata
