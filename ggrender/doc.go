// Package ggrender is a reference gridtile.Renderer built on the gg 2D
// graphics library.
//
// It rasterizes each tile into a pixmap: cell backgrounds, gridlines
// whose presence and stroke width follow the zoom bucket's
// level-of-detail policy, and optional cell labels pulled from a
// CellSource. Labels use a fixed bitmap face; full text shaping is the
// embedding widget's job, not this package's.
//
// For GPU embeddings, Uploader turns finished pixmap tiles into
// gpucontext textures with the same deferred-destruction discipline the
// tile cache uses for pictures.
package ggrender
