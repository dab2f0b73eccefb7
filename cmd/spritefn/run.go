package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"spritefn/css"
	"spritefn/funcs"
	"spritefn/sprite"
	"spritefn/state"
)

// loadMap resolves the LAYOUT argument to a sprite map.
func loadMap(ctx context.Context, cmd *cli.Command) (*sprite.LayoutMap, error) {
	env := state.EnvFromContext(ctx)

	path := cmd.Args().Get(0)
	if len(path) == 0 {
		return nil, fmt.Errorf("no sheet layout specified")
	}
	m, err := sprite.LoadLayout(path)
	if err != nil {
		return nil, err
	}
	env.Log.Debug("Loaded sheet layout",
		zap.String("path", path),
		zap.String("sheet", m.Name()),
		zap.Int("sprites", len(m.Layout().Sprites)))
	return m, nil
}

func runPosition(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	m, err := loadMap(ctx, cmd)
	if err != nil {
		return err
	}
	name := cmd.Args().Get(1)
	if len(name) == 0 {
		return fmt.Errorf("no sprite name specified")
	}

	var errs error
	offsetX, er := css.ParseLength(cmd.String("offset-x"))
	if er != nil {
		errs = multierr.Append(errs, fmt.Errorf("bad offset-x: %w", er))
	}
	offsetY, er := css.ParseLength(cmd.String("offset-y"))
	if er != nil {
		errs = multierr.Append(errs, fmt.Errorf("bad offset-y: %w", er))
	}
	if errs != nil {
		return errs
	}

	r := funcs.NewRegistry(env.Log)
	result, err := r.Call("sprite-position",
		funcs.SpriteMap{Map: m},
		funcs.Str{Val: name},
		funcs.Number{L: offsetX},
		funcs.Number{L: offsetY},
		funcs.Bool(cmd.Bool("percent")))
	if err != nil {
		return err
	}

	fmt.Println(result.CSS())
	return nil
}

func runNames(ctx context.Context, cmd *cli.Command) error {
	m, err := loadMap(ctx, cmd)
	if err != nil {
		return err
	}
	for _, name := range m.Names() {
		fmt.Println(name)
	}
	return nil
}

func runCSS(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	m, err := loadMap(ctx, cmd)
	if err != nil {
		return err
	}

	prefix := cmd.String("prefix")
	if len(prefix) == 0 {
		prefix = env.SelectorPrefix
	}

	out := os.Stdout
	fname := cmd.Args().Get(1)
	if len(fname) > 0 {
		if !cmd.Bool("overwrite") {
			if _, err := os.Stat(fname); err == nil {
				return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", fname)
			}
		}
		if out, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	n, err := sprite.WriteCSS(out, m, prefix)
	if err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	env.Log.Info("Stylesheet generated",
		zap.String("sheet", m.Name()),
		zap.Int64("bytes", n),
		zap.Int("rules", len(m.Layout().Sprites)))
	return nil
}
