package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Saba-Kandashvili/Coherent-Guided-Stochastic-Maze-Engine/cmd/corridor/internal/corridorfile"
	"github.com/Saba-Kandashvili/Coherent-Guided-Stochastic-Maze-Engine/corridor"
)

var (
	genConfigPath string
	genOut        string
	genWidth      int32
	genLength     int32
	genHeight     int32
	genSeed       uint32
	genFullness   int32
	genDebug      bool
	genThreshold  int64
	genQuick      bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate a corridor grid",
	Long: `Generate a corridor grid and write it to a binary file.

Dimensions and seed can come from --config (a YAML file written by the
'config' command) or be given directly as flags; flags take precedence
over a loaded config file.`,
	Run: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "build settings YAML file (optional)")
	generateCmd.Flags().StringVar(&genOut, "out", "corridor.bin", "output grid file")
	generateCmd.Flags().Int32Var(&genWidth, "width", 64, "grid width")
	generateCmd.Flags().Int32Var(&genLength, "length", 64, "grid length")
	generateCmd.Flags().Int32Var(&genHeight, "height", 3, "grid height (layer count)")
	generateCmd.Flags().Uint32Var(&genSeed, "seed", 1, "deterministic seed")
	generateCmd.Flags().Int32Var(&genFullness, "fullness", 60, "target fill percentage, 0-100")
	generateCmd.Flags().BoolVar(&genDebug, "debug", false, "enable the build log / timer sidecar")
	generateCmd.Flags().Int64Var(&genThreshold, "threshold", 0, "minimum elapsed microseconds a timed phase must reach to be logged")
	generateCmd.Flags().BoolVar(&genQuick, "quick", false, "disable instrumentation overhead even if --debug is set")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := corridor.Config{
		Width:    genWidth,
		Length:   genLength,
		Height:   genHeight,
		Seed:     genSeed,
		Fullness: genFullness,
	}

	if genConfigPath != "" {
		var bs buildSettings
		check(unmarshalYAMLFile(genConfigPath, &bs))
		flags := cmd.Flags()
		if !flags.Changed("width") {
			cfg.Width = bs.Width
		}
		if !flags.Changed("length") {
			cfg.Length = bs.Length
		}
		if !flags.Changed("height") {
			cfg.Height = bs.Height
		}
		if !flags.Changed("seed") {
			cfg.Seed = bs.Seed
		}
		if !flags.Changed("fullness") {
			cfg.Fullness = bs.Fullness
		}
	}

	var ctx *corridor.Context
	if genDebug && !genQuick {
		ctx = corridor.NewContext(true, corridor.NewBuildContext())
	} else {
		ctx = corridor.NopContext()
	}

	grid, err := corridor.Generate(cfg, ctx)
	if err != nil {
		fmt.Println("generate failed:", err)
		os.Exit(1)
	}

	if bc, ok := ctx.Contexter.(*corridor.BuildContext); ok {
		reportTimings(bc, genThreshold)
	}

	if err := writeGridFile(genOut, cfg, grid); err != nil {
		fmt.Println("write failed:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %dx%dx%d grid to '%s'\n", grid.Width, grid.Length, grid.Height, genOut)
}

func reportTimings(bc *corridor.BuildContext, thresholdUs int64) {
	for i := 0; i < bc.LogCount(); i++ {
		fmt.Println(bc.LogText(i))
	}
	labels := []struct {
		name  string
		label corridor.TimerLabel
	}{
		{"total", corridor.TimerTotal},
		{"architect", corridor.TimerArchitect},
		{"solve_layer", corridor.TimerSolveLayer},
		{"region_identify", corridor.TimerRegionIdentify},
		{"weld", corridor.TimerWeld},
	}
	for _, l := range labels {
		d := bc.AccumulatedTime(l.label)
		if d.Microseconds() < thresholdUs {
			continue
		}
		fmt.Printf("timer %-16s %v\n", l.name, d)
	}

	for z := 0; ; z++ {
		stats, ok := bc.LayerStats(z)
		if !ok {
			break
		}
		fmt.Printf("layer %-3d collapsed=%-6d void=%d\n", z, stats.Collapsed, stats.Void)
	}
}

func writeGridFile(path string, cfg corridor.Config, grid *corridor.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cells := make([]uint16, 0, grid.Width*grid.Length*grid.Height)
	for z := 0; z < grid.Height; z++ {
		cells = append(cells, grid.Layers[z].Cells...)
	}

	h := corridorfile.Header{
		Width:    uint32(grid.Width),
		Length:   uint32(grid.Length),
		Height:   uint32(grid.Height),
		Seed:     cfg.Seed,
		Fullness: uint32(cfg.ClampedFullness()),
	}
	return corridorfile.Write(f, h, cells)
}
