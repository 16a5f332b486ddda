/*
Package cmap analyzes and reshapes color lookup tables in a perceptually
uniform colorspace, so that colormaps used for data visualization do not
introduce misleading lightness structure.

The core operations are: finding the range of lightness values that every
chroma pair of a map can display (FindBounds, PointwiseBounds), constructing
corrected straight-line lightness trajectories inside those bounds
(CorrectJ), and resampling a map's chroma track to constant perceptual arc
length (Linearize). Colorspace conversion is delegated to the Converter
interface; the default implementation lives in the jab subpackage, and named
colormaps in the palette subpackage.
*/
package cmap
