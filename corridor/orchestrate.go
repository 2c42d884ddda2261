package corridor

import "golang.org/x/sync/errgroup"

// Generate runs the full pipeline of §2: validate the config, run the
// single-threaded architect pass once, then fan out one independent solver
// worker per layer, joining all of them before returning the finished
// grid. Workers never communicate with each other or touch another
// layer's memory (§3, §5) — the only cross-layer state is the stair pairs
// the architect already baked into the grid before any worker starts.
func Generate(cfg Config, ctx *Context) (*Grid, error) {
	if ctx == nil {
		ctx = NopContext()
	}
	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx.SetRunInfo(RunInfo{
		Width: cfg.Width, Length: cfg.Length, Height: cfg.Height,
		Seed: cfg.Seed, Fullness: cfg.Fullness,
	})

	top := NewRNG(cfg.Seed)
	grid, _ := NewArchitect(ctx, cfg, top)

	seeds := make([]uint32, grid.Height)
	for z := range seeds {
		seeds[z] = top.DeriveSeed()
	}

	fullness := cfg.ClampedFullness()

	var g errgroup.Group
	for z := 0; z < grid.Height; z++ {
		z := z
		g.Go(func() error {
			layer := SolveLayer(ctx, grid.Layers[z], fullness, seeds[z])
			nonVoid := layer.CountNonVoid()
			ctx.RecordLayerStats(z, LayerStats{
				Collapsed: nonVoid,
				Void:      layer.Width*layer.Length - nonVoid,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctx.Progressf("generate: completed %dx%dx%d grid", grid.Width, grid.Length, grid.Height)
	return grid, nil
}
