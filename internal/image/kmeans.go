package image

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"slices"

	"github.com/jmylchreest/substance/internal/colour"
)

// Cluster is one k-means centroid and the share of samples it holds.
type Cluster struct {
	Color  colour.OKLab
	Weight float64
}

// KMeans clusters image colours in OKLab.
type KMeans struct {
	MaxIterations int
	// Convergence is the mean centroid movement, in OKLab units, below
	// which iteration stops.
	Convergence float64
	MaxSamples  int

	rng *rand.Rand
}

// NewKMeans returns a clusterer whose random choices are fixed by seed.
func NewKMeans(seed int64) *KMeans {
	return &KMeans{
		MaxIterations: 20,
		Convergence:   1e-4,
		MaxSamples:    5000,
		// #nosec G404 -- Using math/rand intentionally for reproducible clustering, not cryptography
		rng: rand.New(rand.NewSource(seed)),
	}
}

// samplePixels grid-samples img into at most maxSamples OKLab points,
// skipping mostly transparent pixels.
func samplePixels(img image.Image, maxSamples int) []colour.OKLab {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	step := 1
	if total > maxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(maxSamples))), 1)
	}

	points := make([]colour.OKLab, 0, min(total, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < 128 {
				continue
			}
			points = append(points, colour.SRGBFromOctets(c.R, c.G, c.B).OKLab())
			if len(points) >= maxSamples {
				return points
			}
		}
	}
	return points
}

func distance2(a, b colour.OKLab) float64 {
	d := a.DistanceOK(b)
	return d * d
}

// Extract clusters the colours of img into at most k clusters, heaviest
// first.
func (e *KMeans) Extract(img image.Image, k int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 || k > 256 {
		return nil, fmt.Errorf("cluster count must be between 1 and 256, got %d", k)
	}

	points := samplePixels(img, e.MaxSamples)
	if len(points) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	var clusters []Cluster
	if unique := uniqueColours(points); len(unique) <= k {
		clusters = unique
	} else {
		clusters = e.cluster(points, k)
	}

	slices.SortStableFunc(clusters, func(a, b Cluster) int { return cmp.Compare(b.Weight, a.Weight) })
	return clusters, nil
}

func uniqueColours(points []colour.OKLab) []Cluster {
	index := make(map[colour.OKLab]int)
	var out []Cluster
	for _, p := range points {
		i, ok := index[p]
		if !ok {
			i = len(out)
			index[p] = i
			out = append(out, Cluster{Color: p})
		}
		out[i].Weight++
	}
	for i := range out {
		out[i].Weight /= float64(len(points))
	}
	return out
}

func (e *KMeans) cluster(points []colour.OKLab, k int) []Cluster {
	centroids := e.seedCentroids(points, k)
	assignments := make([]int, len(points))

	for range e.MaxIterations {
		for i, p := range points {
			assignments[i] = nearest(p, centroids)
		}

		next := make([]colour.OKLab, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			next[c].L += p.L
			next[c].A += p.A
			next[c].B += p.B
			counts[c]++
		}

		movement := 0.0
		for c := range next {
			if counts[c] == 0 {
				// Empty clusters keep their centroid.
				next[c] = centroids[c]
				continue
			}
			n := float64(counts[c])
			next[c] = colour.OKLab{L: next[c].L / n, A: next[c].A / n, B: next[c].B / n}
			movement += next[c].DistanceOK(centroids[c])
		}
		centroids = next

		if movement/float64(k) < e.Convergence {
			break
		}
	}

	weights := make([]float64, k)
	for i, p := range points {
		assignments[i] = nearest(p, centroids)
		weights[assignments[i]]++
	}

	out := make([]Cluster, 0, k)
	for c, w := range weights {
		if w > 0 {
			out = append(out, Cluster{Color: centroids[c], Weight: w / float64(len(points))})
		}
	}
	return out
}

func nearest(p colour.OKLab, centroids []colour.OKLab) int {
	best, bestDist := 0, math.MaxFloat64
	for i, c := range centroids {
		if d := distance2(p, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// seedCentroids picks initial centroids with k-means++: each new centroid
// is drawn with probability proportional to its squared distance from the
// nearest one already chosen.
func (e *KMeans) seedCentroids(points []colour.OKLab, k int) []colour.OKLab {
	centroids := make([]colour.OKLab, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	dists := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			dists[i] = distance2(p, centroids[nearest(p, centroids)])
			total += dists[i]
		}
		if total == 0 {
			// Every point already coincides with a centroid.
			centroids = append(centroids, centroids[len(centroids)-1])
			continue
		}

		target := e.rng.Float64() * total
		pick := len(points) - 1
		for i, d := range dists {
			target -= d
			if target <= 0 {
				pick = i
				break
			}
		}
		centroids = append(centroids, points[pick])
	}
	return centroids
}
