package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// face returns a cached font face of the given kind and size
func (e *EbitenRenderer) face(kind faceKind, size float64) *text.GoTextFace {
	key := faceKey{kind: kind, size: size}
	if f, ok := e.faces[key]; ok {
		return f
	}
	src := e.sansFontSource
	switch kind {
	case faceBold:
		src = e.boldFontSource
	case faceMono:
		src = e.monoFontSource
	}
	f := &text.GoTextFace{Source: src, Size: size}
	e.faces[key] = f
	return f
}

// bodyFace is the reading face: Go Mono in dyslexia mode, Go Regular otherwise
func (e *EbitenRenderer) bodyFace(dyslexia bool, size float64) *text.GoTextFace {
	if dyslexia {
		return e.face(faceMono, size)
	}
	return e.face(faceSans, size)
}

// titleFace is bold unless the alternate face is on
func (e *EbitenRenderer) titleFace(dyslexia bool) *text.GoTextFace {
	if dyslexia {
		return e.face(faceMono, titleSize)
	}
	return e.face(faceBold, titleSize)
}

// textWidth returns the width of a string in pixels using the given font face
func textWidth(str string, face text.Face) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}

// wrapText breaks str into lines no wider than maxWidth
func wrapText(str string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(str) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
