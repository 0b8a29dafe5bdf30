// Package noise implements the random Gaussian noise augmentation
package noise

import "errors"
import "math/rand"

import "github.com/evoaug/evoaug/sequence"

// RandomNoise adds independent Gaussian noise with mean NoiseMean and
// standard deviation NoiseStd to every element of the batch. The output is
// no longer strictly one-hot.
type RandomNoise struct {
	NoiseMean, NoiseStd float64
}

// New creates a random noise augmentation.
func New(noiseMean, noiseStd float64) (*RandomNoise, error) {
	if noiseStd < 0 {
		return nil, errors.New("noise: need NoiseStd >= 0")
	}
	return &RandomNoise{NoiseMean: noiseMean, NoiseStd: noiseStd}, nil
}

// MustNew creates a random noise augmentation
func MustNew(noiseMean, noiseStd float64) *RandomNoise {
	o, err := New(noiseMean, noiseStd)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Apply adds a different noise sample to every element.
func (r *RandomNoise) Apply(x *sequence.Batch) *sequence.Batch {
	o := x.Clone()
	for i := range o.Data {
		o.Data[i] += float32(rand.NormFloat64()*r.NoiseStd + r.NoiseMean)
	}
	return o
}
