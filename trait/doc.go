// Package trait defines the quality criterion the refinement engine tests
// every triangle against, and the default implementation (MinAngleTraits)
// this repository ships: Shewchuk's minimum-angle bound together with an
// optional maximum-area cap.
//
// Criteria is the single seam a caller needs to cross to change what
// "bad" means; refine depends only on this interface, never on
// MinAngleTraits directly (conform does not use a criterion at all), so an alternative criterion (size-field driven,
// gradation-aware, or anything else satisfying Criteria) plugs in by
// construction.
package trait
