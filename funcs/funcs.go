package funcs

import (
	"fmt"

	"spritefn/css"
	"spritefn/sprite"
)

// sprite-map-name($map)
func spriteMapName(args []Value) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	return Str{Val: m.Name(), Quoted: true}, nil
}

// sprite-names($map)
func spriteNames(args []Value) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	names := m.Names()
	items := make([]Value, 0, len(names))
	for _, name := range names {
		items = append(items, Str{Val: name, Quoted: true})
	}
	return List{Items: items, Comma: true}, nil
}

// sprite-width($map, $sprite: "") - sheet width when no sprite is named
func spriteWidth(args []Value) (Value, error) {
	return spriteDimension("sprite-width", args, func(s sprite.Sheet) int { return s.Width },
		func(sp sprite.Sprite) int { return sp.Width })
}

// sprite-height($map, $sprite: "")
func spriteHeight(args []Value) (Value, error) {
	return spriteDimension("sprite-height", args, func(s sprite.Sheet) int { return s.Height },
		func(sp sprite.Sprite) int { return sp.Height })
}

func spriteDimension(fn string, args []Value, sheetDim func(sprite.Sheet) int, entryDim func(sprite.Sprite) int) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return Number{L: css.Px(float64(sheetDim(m.Layout())))}, nil
	}
	name, err := stringArg(fn, args, 1, "sprite")
	if err != nil {
		return nil, err
	}
	entry, err := findSprite(m, name)
	if err != nil {
		return nil, err
	}
	return Number{L: css.Px(float64(entryDim(entry)))}, nil
}

// sprite-url($map)
func spriteURL(args []Value) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	return Str{Val: fmt.Sprintf("url('%s')", m.URL())}, nil
}

// sprite-position($map, $sprite, $offset-x: 0, $offset-y: 0, $use-percentages: false)
func spritePosition(args []Value) (Value, error) {
	pos, err := resolvePosition("sprite-position", args)
	if err != nil {
		return nil, err
	}
	return List{Items: []Value{Number{L: pos.X}, Number{L: pos.Y}}}, nil
}

// sprite($map, $sprite, $offset-x: 0, $offset-y: 0) - url and position in one
// value, ready for the background shorthand
func spriteShorthand(args []Value) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	pos, err := resolvePosition("sprite", args)
	if err != nil {
		return nil, err
	}
	return List{Items: []Value{
		Str{Val: fmt.Sprintf("url('%s')", m.URL())},
		Number{L: pos.X},
		Number{L: pos.Y},
	}}, nil
}

// sprite-has-selector($map, $sprite, $selector)
func spriteHasSelector(args []Value) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	name, err := stringArg("sprite-has-selector", args, 1, "sprite")
	if err != nil {
		return nil, err
	}
	state, err := stringArg("sprite-has-selector", args, 2, "selector")
	if err != nil {
		return nil, err
	}
	if _, err := findSprite(m, name); err != nil {
		return nil, err
	}
	return Bool(m.HasSelector(name, state)), nil
}

// resolvePosition is the shared argument plumbing for sprite-position and
// sprite: map, sprite name, optional offsets, optional percentage flag.
func resolvePosition(fn string, args []Value) (sprite.Position, error) {
	var zero sprite.Position

	m, err := mapArg(args, 0)
	if err != nil {
		return zero, err
	}
	name, err := stringArg(fn, args, 1, "sprite")
	if err != nil {
		return zero, err
	}
	offsetX, err := lengthArg(fn, args, 2, "offset-x")
	if err != nil {
		return zero, err
	}
	offsetY, err := lengthArg(fn, args, 3, "offset-y")
	if err != nil {
		return zero, err
	}
	usePercentages, err := boolArg(fn, args, 4, "use-percentages")
	if err != nil {
		return zero, err
	}

	entry, err := findSprite(m, name)
	if err != nil {
		return zero, err
	}
	return sprite.PositionOf(m.Layout(), entry, offsetX, offsetY, usePercentages), nil
}
