// Package imaging normalises uploaded pictures: the brand logo is fitted
// into a transparent square PNG and gallery photos are cover-cropped into a
// fixed-size JPEG. JPEG, PNG, GIF and WebP inputs are accepted.
package imaging
