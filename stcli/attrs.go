package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/styledtext/attr"
)

// parseAttribute turns a "<key>=<value>" specification into an attribute.
// Recognized keys: family, weight, style, size, underline, strike, color.
func parseAttribute(spec string) (attr.Attribute, error) {
	kv := strings.SplitN(spec, "=", 2)
	if len(kv) != 2 {
		return attr.Attribute{}, fmt.Errorf("attribute spec %q is not <key>=<value>", spec)
	}
	key := strings.ToLower(strings.TrimSpace(kv[0]))
	val := strings.TrimSpace(kv[1])
	switch key {
	case "family":
		return attr.FontFamily(parseFamily(val)), nil
	case "weight":
		return parseWeight(val)
	case "style":
		switch strings.ToLower(val) {
		case "italic":
			return attr.FontStyle(attr.StyleItalic), nil
		case "regular", "normal":
			return attr.FontStyle(attr.StyleRegular), nil
		}
		return attr.Attribute{}, fmt.Errorf("unknown style %q (italic|regular)", val)
	case "size":
		pts, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return attr.Attribute{}, fmt.Errorf("size not numeric: %q", val)
		}
		return attr.FontSize(pts), nil
	case "underline":
		return attr.Underline(parseSwitch(val)), nil
	case "strike", "strikethrough":
		return attr.Strikethrough(parseSwitch(val)), nil
	case "color":
		c, err := parseColor(val)
		if err != nil {
			return attr.Attribute{}, err
		}
		return attr.TextColor(c), nil
	}
	return attr.Attribute{}, fmt.Errorf("unknown attribute key %q", key)
}

func parseFamily(val string) attr.Family {
	switch strings.ToLower(val) {
	case "sans", "sans-serif":
		return attr.SansSerif
	case "serif":
		return attr.Serif
	case "mono", "monospace":
		return attr.Monospace
	case "cursive":
		return attr.Family{Generic: attr.GenericCursive}
	case "fantasy":
		return attr.Family{Generic: attr.GenericFantasy}
	}
	return attr.FamilyName(val)
}

func parseWeight(val string) (attr.Attribute, error) {
	switch strings.ToLower(val) {
	case "normal":
		return attr.FontWeight(attr.WeightNormal), nil
	case "bold":
		return attr.FontWeight(attr.WeightBold), nil
	case "light":
		return attr.FontWeight(attr.WeightLight), nil
	case "black":
		return attr.FontWeight(attr.WeightBlack), nil
	}
	w, err := strconv.Atoi(val)
	if err != nil || w < 1 || w > 1000 {
		return attr.Attribute{}, fmt.Errorf("weight %q not in 1..1000", val)
	}
	return attr.FontWeight(attr.Weight(w)), nil
}

func parseSwitch(val string) bool {
	switch strings.ToLower(val) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}

// parseColor reads an RRGGBB hex triple.
func parseColor(val string) (color.RGBA, error) {
	val = strings.TrimPrefix(val, "#")
	if len(val) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q is not RRGGBB", val)
	}
	n, err := strconv.ParseUint(val, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not RRGGBB", val)
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, nil
}
