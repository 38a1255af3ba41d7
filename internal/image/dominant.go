package image

import (
	"image"

	"github.com/jmylchreest/substance/internal/colour"
)

// minSeedChroma is the chroma a cluster needs to count as a hue source.
const minSeedChroma = 0.04

// DefaultClusters is the cluster count used for seed extraction.
const DefaultClusters = 8

// Dominant returns the heaviest cluster of img that is chromatic enough to
// carry a hue, or the heaviest cluster when none is. seed fixes the
// clustering so a given image always yields the same colour.
func Dominant(img image.Image, k int, seed int64) (colour.OKLrch, error) {
	clusters, err := NewKMeans(seed).Extract(img, k)
	if err != nil {
		return colour.OKLrch{}, err
	}
	for _, c := range clusters {
		if c.Color.LCh().C >= minSeedChroma {
			return colour.ToOKLrch(c.Color), nil
		}
	}
	return colour.ToOKLrch(clusters[0].Color), nil
}
