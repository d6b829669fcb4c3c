// Package render turns decoded cursor frames into output artifacts.
//
// Frames are bucketed by pixel size, long animations are thinned to a
// frame cap by even sampling, and each size group becomes either a
// standalone image or a vertically stacked strip. An animated-GIF
// encoder is provided for groups that should stay animated.
package render
