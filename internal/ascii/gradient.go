package ascii

import (
	"sort"

	i2a "github.com/qeesung/image2ascii/ascii"
)

const (
	GradientStandard    = "standard"
	GradientDetailed    = "detailed"
	GradientBlocks      = "blocks"
	GradientImage2ASCII = "image2ascii"
)

var (
	defaultGradient []rune
	presets         map[string]string
)

func init() {
	presets = map[string]string{
		GradientStandard:    " .:-=+*#%@",
		GradientDetailed:    " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
		GradientBlocks:      " ░▒▓█",
		GradientImage2ASCII: string(i2a.DefaultOptions.Pixels),
	}
	defaultGradient = []rune(presets[GradientStandard])
}

// Gradient resolves a preset name, falling back to treating name as a
// literal gradient.
func Gradient(name string) string {
	if g, ok := presets[name]; ok {
		return g
	}
	return name
}

// Presets returns the preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
