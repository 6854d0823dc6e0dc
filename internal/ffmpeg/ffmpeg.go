package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ExtractFrame writes the given zero-based frame of input to a PNG file in
// dir and returns its path.
func ExtractFrame(ctx context.Context, input string, frame int, dir string) (string, error) {
	if frame < 0 {
		return "", fmt.Errorf("invalid frame index: %d", frame)
	}

	probe, err := FFProbe(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to probe video: %w", err)
	}

	out := filepath.Join(dir, "frame.png")
	cmd := exec.CommandContext(ctx, "ffmpeg", "-v", "error", "-y",
		"-ss", probe.Timestamp(frame),
		"-i", input,
		"-frames:v", "1",
		out,
	)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute ffmpeg: %w", err)
	}

	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("ffmpeg produced no frame %d: %w", frame, err)
	}
	return out, nil
}
