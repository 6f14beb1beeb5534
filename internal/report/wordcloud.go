package report

import (
	"errors"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/psykhi/wordclouds"
)

// ErrNoCloudText means the selected comments contain no usable words.
var ErrNoCloudText = errors.New("no text available for word cloud")

var cloudPalette = []color.Color{
	color.RGBA{R: 0x1a, G: 0x73, B: 0xe8, A: 0xff},
	color.RGBA{R: 0x67, G: 0x3a, B: 0xb7, A: 0xff},
	color.RGBA{R: 0xff, G: 0x57, B: 0x22, A: 0xff},
	color.RGBA{R: 0x34, G: 0xa8, B: 0x53, A: 0xff},
}

// RenderWordCloud lays out the word frequencies of the given clean texts
// as a PNG. fontPath must point at a TTF file; callers skip the cloud
// with a warning when no font is configured.
func RenderWordCloud(texts []string, fontPath string, w io.Writer) error {
	counts := wordCounts(texts)
	if len(counts) == 0 {
		return ErrNoCloudText
	}

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(fontPath),
		wordclouds.FontMaxSize(64),
		wordclouds.FontMinSize(12),
		wordclouds.Width(800),
		wordclouds.Height(400),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(cloudPalette),
	)

	return png.Encode(w, cloud.Draw())
}

func wordCounts(texts []string) map[string]int {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, word := range strings.Fields(strings.ToLower(text)) {
			word = strings.Trim(word, `.,!?;:"'()[]`)
			if len(word) < 3 {
				continue
			}
			counts[word]++
		}
	}
	return counts
}
