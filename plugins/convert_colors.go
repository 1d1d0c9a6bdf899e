package plugins

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/arturoeanton/svgo/ast"
	"github.com/arturoeanton/svgo/plugin"
)

var colorAttrs = map[string]bool{
	"fill": true, "stroke": true, "stop-color": true, "color": true,
	"flood-color": true, "lighting-color": true,
}

var rgbFuncRe = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// namedColors is a narrow subset of CSS named colors actually common in SVG
// output; a full 147-entry table belongs to a styling layer outside this
// core's scope.
var namedColors = map[string]string{
	"black": "#000000", "white": "#ffffff", "red": "#ff0000",
	"green": "#008000", "blue": "#0000ff", "yellow": "#ffff00",
	"none": "", // sentinel: never rewritten
}

// convertColors normalizes fill/stroke/color-family attribute values:
// rgb(r,g,b) to hex, named colors to hex, 6-digit hex to 3-digit where
// lossless, and hex digits lowercased.
type convertColors struct {
	plugin.Base
}

func newConvertColors() plugin.Plugin { return &convertColors{} }

func (*convertColors) Name() string         { return "convertColors" }
func (*convertColors) Description() string  { return "normalizes color values to the shortest hex form" }
func (*convertColors) DefaultEnabled() bool { return true }

func (*convertColors) Apply(doc *ast.Document) error {
	doc.WalkElements(func(e *ast.Element) {
		for name := range colorAttrs {
			v, ok := e.Attr(name)
			if !ok {
				continue
			}
			if nv := normalizeColor(v); nv != v {
				e.Attrs.Set(name, nv)
			}
		}
	})
	return nil
}

func normalizeColor(v string) string {
	if hex, ok := namedColors[strings.ToLower(v)]; ok {
		if hex == "" {
			return v
		}
		return shortenHex(hex)
	}
	if m := rgbFuncRe.FindStringSubmatch(v); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		return shortenHex(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	}
	if strings.HasPrefix(v, "#") {
		return shortenHex(strings.ToLower(v))
	}
	return v
}

func shortenHex(hex string) string {
	if len(hex) != 7 {
		return hex
	}
	if hex[1] == hex[2] && hex[3] == hex[4] && hex[5] == hex[6] {
		return "#" + string(hex[1]) + string(hex[3]) + string(hex[5])
	}
	return hex
}
