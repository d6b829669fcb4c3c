// Package xcursor implements a reader for the Xcursor file format used
// by X11 cursor themes.
//
// An Xcursor file is a table-of-contents indexed container of chunks.
// Image chunks carry a single cursor frame: fixed-size raster, hotspot
// coordinates and an animation delay. A file typically carries the same
// cursor at several resolutions, and animated cursors carry several
// frames per resolution.
//
// Higher level rendering (grouping frames by size, thinning long
// animations, stacking strips) lives in the render package.
package xcursor
