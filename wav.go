package wavdec

import "time"

// durationFromFrames returns the playing time of frames at sampleRate.
func durationFromFrames(frames uint32, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}
