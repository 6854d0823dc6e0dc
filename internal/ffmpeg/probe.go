package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var ErrNoVideoStream = errors.New("no video streams found")

type Probe struct {
	FrameRate float64
}

// Timestamp returns the seek position of frame in seconds, formatted for -ss.
func (p *Probe) Timestamp(frame int) string {
	return strconv.FormatFloat(float64(frame)/p.FrameRate, 'f', 6, 64)
}

type ffprobeOutput struct {
	Streams []struct {
		RFrameRate string `json:"r_frame_rate"`
	} `json:"streams"`
}

// parseRate parses ffprobe's rational frame rate, e.g. "30000/1001".
func parseRate(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, fmt.Errorf("invalid r_frame_rate format: %q", s)
	}

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse frame rate numerator: %w", err)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse frame rate denominator: %w", err)
	}
	if n <= 0 || d <= 0 {
		return 0, fmt.Errorf("invalid frame rate: %q", s)
	}
	return n / d, nil
}

func parseProbe(out []byte) (*Probe, error) {
	var o ffprobeOutput
	if err := json.Unmarshal(out, &o); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ffprobe output: %w", err)
	}
	if len(o.Streams) == 0 {
		return nil, ErrNoVideoStream
	}

	rate, err := parseRate(o.Streams[0].RFrameRate)
	if err != nil {
		return nil, err
	}
	return &Probe{FrameRate: rate}, nil
}

// FFProbe reads the frame rate of the first video stream of path.
func FFProbe(ctx context.Context, path string) (*Probe, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate",
		"-of", "json",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to execute ffprobe: %w", err)
	}
	return parseProbe(out)
}
