// Package render draws grids for people: as PNG images through
// github.com/yalue/image_utils, and as ASCII frames printed from search hooks.
package render
