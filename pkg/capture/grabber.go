package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// CommandGrabber captures a region by running an external screenshot tool
// that writes an encoded PNG, JPEG or GIF image to stdout. The placeholders
// {x}, {y}, {w} and {h} in Args are replaced with the region's geometry, e.g.
//
//	grim -g "{x},{y} {w}x{h}" -
//	import -window root -crop {w}x{h}+{x}+{y} png:-
type CommandGrabber struct {
	Command string
	Args    []string
	// Env is appended to the parent environment.
	Env     []string
	Timeout time.Duration
}

// Grab runs the screenshot command for r and decodes its output.
func (g *CommandGrabber) Grab(ctx context.Context, r Region) (image.Image, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if g.Command == "" {
		return nil, fmt.Errorf("screen capture command is not configured")
	}
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, g.Command, expandRegion(g.Args, r)...)
	if len(g.Env) > 0 {
		cmd.Env = append(os.Environ(), g.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("capture %s: %w (%s)", r, err, strings.TrimSpace(stderr.String()))
	}

	img, _, err := image.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decode capture of %s: %w", r, err)
	}
	return img, nil
}

func expandRegion(args []string, r Region) []string {
	rep := strings.NewReplacer(
		"{x}", strconv.Itoa(r.X),
		"{y}", strconv.Itoa(r.Y),
		"{w}", strconv.Itoa(r.Width),
		"{h}", strconv.Itoa(r.Height),
	)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = rep.Replace(a)
	}
	return out
}
