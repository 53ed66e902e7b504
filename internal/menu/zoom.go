package menu

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ZoomMode tells a named virtual zoom apart from an explicit percentage.
type ZoomMode int

const (
	ZoomExplicit ZoomMode = iota
	ZoomFitPage
	ZoomFitWidth
	ZoomFitContent
	ZoomActualSize
	// ZoomCustom is the value of the "custom zoom" command. It never
	// describes a window's actual zoom.
	ZoomCustom
)

// Zoom is a window zoom: either a virtual mode or an explicit percentage.
type Zoom struct {
	Mode    ZoomMode
	Percent float64
}

const (
	ZoomMin = 8.33
	ZoomMax = 6400.0
)

var (
	FitPage    = Zoom{Mode: ZoomFitPage}
	FitWidth   = Zoom{Mode: ZoomFitWidth}
	FitContent = Zoom{Mode: ZoomFitContent}
	ActualSize = Zoom{Mode: ZoomActualSize}
	CustomZoom = Zoom{Mode: ZoomCustom}
)

// Percent returns an explicit zoom.
func Percent(p float64) Zoom {
	return Zoom{Mode: ZoomExplicit, Percent: p}
}

// zoomSteps lists the zoom range in identifier order, custom last.
var zoomSteps = [...]Zoom{
	{Mode: ZoomFitPage},
	{Mode: ZoomActualSize},
	{Mode: ZoomFitWidth},
	{Percent: 6400},
	{Percent: 3200},
	{Percent: 1600},
	{Percent: 800},
	{Percent: 400},
	{Percent: 200},
	{Percent: 150},
	{Percent: 125},
	{Percent: 100},
	{Percent: 50},
	{Percent: 25},
	{Percent: 12.5},
	{Percent: 8.33},
	{Mode: ZoomFitContent},
	{Mode: ZoomCustom},
}

// Fails to compile unless ZoomFirst..ZoomLast covers exactly len(zoomSteps)
// identifiers.
var _ [0]struct{} = [int(ZoomLast-ZoomFirst+1) - len(zoomSteps)]struct{}{}

// ZoomRange is the zoom command range.
var ZoomRange = newRange("zoom", ZoomFirst, ZoomLast, zoomSteps[:])

// IdentifierFromZoom returns the command standing for z, or IDZoomCustom
// when z matches no predefined step.
func IdentifierFromZoom(z Zoom) CommandID {
	if id, ok := ZoomRange.ID(z); ok {
		return id
	}
	return IDZoomCustom
}

// MenuIdentifierFromVirtualZoom is IdentifierFromZoom under the name the
// window layer uses.
func MenuIdentifierFromVirtualZoom(z Zoom) CommandID {
	return IdentifierFromZoom(z)
}

// ZoomFromIdentifier is the inverse of IdentifierFromZoom. id must lie in
// ZoomRange.
func ZoomFromIdentifier(id CommandID) Zoom {
	return ZoomRange.Value(id)
}

// ClampZoom limits explicit percentages to ZoomMin..ZoomMax. NaN becomes
// 100%.
func ClampZoom(z Zoom) Zoom {
	if z.Mode != ZoomExplicit {
		return z
	}
	if math.IsNaN(z.Percent) {
		return Percent(100)
	}
	z.Percent = min(max(z.Percent, ZoomMin), ZoomMax)
	return z
}

// IsVirtual reports whether z is a named zoom.
func (z Zoom) IsVirtual() bool {
	return z.Mode != ZoomExplicit
}

func (z Zoom) String() string {
	switch z.Mode {
	case ZoomFitPage:
		return "fit page"
	case ZoomFitWidth:
		return "fit width"
	case ZoomFitContent:
		return "fit content"
	case ZoomActualSize:
		return "actual size"
	case ZoomCustom:
		return "custom"
	default:
		return strconv.FormatFloat(z.Percent, 'f', -1, 64) + "%"
	}
}

// ParseZoom accepts a virtual zoom name ("fit page", "fit-width", ...) or a
// percentage with or without the trailing '%'.
func ParseZoom(s string) (Zoom, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)

	switch name {
	case "fit page", "page":
		return FitPage, nil
	case "fit width", "width":
		return FitWidth, nil
	case "fit content", "content":
		return FitContent, nil
	case "actual size", "actual":
		return ActualSize, nil
	}

	p, err := strconv.ParseFloat(strings.TrimSuffix(name, "%"), 64)
	if err != nil || math.IsNaN(p) {
		return Zoom{}, fmt.Errorf("invalid zoom %q", s)
	}

	if p < ZoomMin || p > ZoomMax {
		return Zoom{}, fmt.Errorf("zoom %v%% outside %v%%..%v%%", p, ZoomMin, ZoomMax)
	}

	return Percent(p), nil
}

// NextZoomStep returns the predefined percentage step after (in) or before
// (out) the given percentage.
func NextZoomStep(current float64, in bool) float64 {
	next := current
	for _, z := range zoomSteps {
		if z.Mode != ZoomExplicit {
			continue
		}
		if in && z.Percent > current && (next == current || z.Percent < next) {
			next = z.Percent
		}
		if !in && z.Percent < current && (next == current || z.Percent > next) {
			next = z.Percent
		}
	}
	return next
}
