package funcs

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"spritefn/css"
	"spritefn/sprite"
)

// Func is a registered helper. Arguments are already evaluated; positional
// binding is the evaluator's job, keyword arguments are not supported here.
type Func func(args []Value) (Value, error)

// Registry is the dispatch table an expression evaluator consults when it
// encounters a sprite helper call.
type Registry struct {
	log *zap.Logger
	fns map[string]Func
}

// NewRegistry creates a registry with all sprite helpers registered.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log: log.Named("sprite-funcs"),
		fns: make(map[string]Func),
	}
	r.register("sprite-map-name", spriteMapName)
	r.register("sprite-names", spriteNames)
	r.register("sprite-width", spriteWidth)
	r.register("sprite-height", spriteHeight)
	r.register("sprite-url", spriteURL)
	r.register("sprite-position", spritePosition)
	r.register("sprite", spriteShorthand)
	r.register("inline-sprite", inlineSprite)
	r.register("sprite-has-selector", spriteHasSelector)
	return r
}

func (r *Registry) register(name string, fn Func) {
	r.fns[name] = fn
}

// Lookup returns the helper registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// Names returns all registered helper names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a registered helper by name.
func (r *Registry) Call(name string, args ...Value) (Value, error) {
	fn, ok := r.fns[name]
	if !ok {
		return nil, fmt.Errorf("no sprite helper called %q", name)
	}
	result, err := fn(args)
	if err != nil {
		r.log.Debug("Sprite helper failed", zap.String("helper", name), zap.Error(err))
		return nil, err
	}
	r.log.Debug("Sprite helper evaluated", zap.String("helper", name), zap.String("result", result.CSS()))
	return result, nil
}

// argument accessors, shared by all helpers

func mapArg(args []Value, pos int) (sprite.Map, error) {
	if pos >= len(args) {
		return nil, &sprite.NotASpriteMapError{Got: "nothing"}
	}
	m, ok := args[pos].(SpriteMap)
	if !ok {
		return nil, &sprite.NotASpriteMapError{Got: args[pos].kind()}
	}
	return m.Map, nil
}

func stringArg(fn string, args []Value, pos int, name string) (string, error) {
	if pos >= len(args) {
		return "", &sprite.InvalidArgumentTypeError{Fn: fn, Arg: name, Expected: "a string", Got: "nothing"}
	}
	s, ok := args[pos].(Str)
	if !ok {
		return "", &sprite.InvalidArgumentTypeError{Fn: fn, Arg: name, Expected: "a string", Got: args[pos].kind()}
	}
	return s.Val, nil
}

// lengthArg returns the length at pos, or pixel-zero when absent.
func lengthArg(fn string, args []Value, pos int, name string) (css.Length, error) {
	if pos >= len(args) {
		return css.Px(0), nil
	}
	n, ok := args[pos].(Number)
	if !ok {
		return css.Length{}, &sprite.InvalidArgumentTypeError{Fn: fn, Arg: name, Expected: "a numeric length", Got: args[pos].kind()}
	}
	return n.L, nil
}

// boolArg returns the boolean at pos, or false when absent.
func boolArg(fn string, args []Value, pos int, name string) (bool, error) {
	if pos >= len(args) {
		return false, nil
	}
	b, ok := args[pos].(Bool)
	if !ok {
		return false, &sprite.InvalidArgumentTypeError{Fn: fn, Arg: name, Expected: "a boolean", Got: args[pos].kind()}
	}
	return bool(b), nil
}

// findSprite resolves a sprite name in a map or reports the valid names.
func findSprite(m sprite.Map, name string) (sprite.Sprite, error) {
	entry, ok := m.Find(name)
	if !ok {
		return sprite.Sprite{}, &sprite.UnknownSpriteError{Sprite: name, Map: m.Name(), Valid: m.Names()}
	}
	return entry, nil
}
