// Package layout implements the box layout algorithms behind the public
// tree API: flexbox, block and grid containers, measured leaves, and
// absolutely positioned children.
//
// It works entirely through the [Layoutable] interface. The engine reads
// each node's [Style], sizes and positions its children, and stores an
// unrounded [Layout] back on every node it reaches. Results are cached per
// node in a [Cache] and reused while the node is clean.
//
// The main entry point is [Compute]. Value types such as [Length],
// [Percent] and [GridPlacement] are re-exported through the root
// boxlayout package for public consumption.
package layout
