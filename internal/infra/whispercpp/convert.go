// Package whispercpp transcribes the recorded clip with a local whisper.cpp
// model. The cgo-backed implementation is compiled with -tags whispercpp and
// needs libwhisper.a and whisper.h on LIBRARY_PATH and C_INCLUDE_PATH.
package whispercpp

// SampleRate is the only rate whisper.cpp accepts.
const SampleRate = 16000

// Resample converts mono samples from one rate to another by linear
// interpolation.
func Resample(samples []float32, from, to int) []float32 {
	if from == to || from <= 0 || to <= 0 || len(samples) == 0 {
		return samples
	}

	n := int(int64(len(samples)) * int64(to) / int64(from))
	out := make([]float32, n)
	step := float64(from) / float64(to)
	last := len(samples) - 1

	for i := 0; i < n; i++ {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= last {
			out[i] = samples[last]
			continue
		}
		frac := float32(pos - float64(idx))
		out[i] = samples[idx]*(1-frac) + samples[idx+1]*frac
	}
	return out
}
