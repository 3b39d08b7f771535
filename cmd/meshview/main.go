package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"meshview/internal/config"
	"meshview/internal/env"
	"meshview/internal/logger"
	"meshview/internal/material"
	"meshview/internal/pose"
	"meshview/internal/render"
)

// materialsDir holds optional extra preset files (see 'meshview materials').
const materialsDir = "assets/materials"

var (
	flagMaterial  string
	flagBackend   string
	flagTranslate string
	flagRotate    string
	flagOut       string
	flagWidth     int
	flagHeight    int
)

var rootCmd = &cobra.Command{
	Use:   "meshview <model>",
	Short: "Display or render a 3D model file",
	Long: `meshview loads a 3D model file, applies a material preset and an
optional pose (translation + Euler rotation), and either displays it in an
interactive window or renders it offscreen to a PNG.

Backends:
  window  interactive viewer (obj, gltf, glb, iqm, m3d, vox)
  image   software render to PNG, no display needed (obj, stl, ply, gltf, glb)`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.Flags().StringVarP(&flagMaterial, "material", "m", "", "material preset (see 'meshview materials')")
	rootCmd.Flags().StringVarP(&flagBackend, "backend", "b", "", "rendering backend: window or image")
	rootCmd.Flags().StringVar(&flagTranslate, "translate", "", "translation x,y,z applied after rotation")
	rootCmd.Flags().StringVar(&flagRotate, "rotate", "", "Euler rotation rx,ry,rz in degrees, about X then Y then Z")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output image path for the image backend (default <model>.png)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "viewport/image width (default from prefs)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "viewport/image height (default from prefs)")
	rootCmd.AddCommand(materialsCmd, infoCmd, fetchCmd, configCmd)
}

func main() {
	_ = env.Load(".env")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, prefs, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	factory, err := render.Default().Lookup(cfg.Backend)
	if err != nil {
		return err
	}

	log := logger.New(logger.DefaultPath)
	log.Logf("model=%s backend=%s material=%s", cfg.ModelPath, cfg.Backend, cfg.Material.Name)

	backend := factory(render.Options{
		Material:     cfg.Material,
		Pose:         cfg.Pose,
		OutPath:      cfg.OutPath,
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        "meshview - " + filepath.Base(cfg.ModelPath),
		GridVisible:  prefs.GridVisible,
		ShowFPS:      prefs.ShowFPS,
		ShowMemAlloc: prefs.ShowMemAlloc,
	})
	if err := backend.Load(cfg.ModelPath); err != nil {
		log.Logf("load failed: %v", err)
		return err
	}
	if err := backend.Render(); err != nil {
		log.Logf("render failed: %v", err)
		return err
	}
	if cfg.Backend == "image" {
		log.Logf("wrote %s", cfg.OutPath)
		fmt.Printf("Saved %s with %s material\n", cfg.OutPath, cfg.Material.Name)
	}
	return nil
}

// buildConfig assembles the read-only per-run config. Precedence for
// backend and material: flag, then MESHVIEW_* environment, then prefs
// file, then the built-in default.
func buildConfig(modelPath string) (*config.View, config.Prefs, error) {
	prefs, _ := config.LoadPrefs(config.PrefsPath)

	if _, err := os.Stat(modelPath); err != nil {
		return nil, prefs, fmt.Errorf("file not found: %s", modelPath)
	}

	table := material.Builtin()
	if _, err := table.LoadDir(materialsDir); err != nil {
		return nil, prefs, err
	}
	matName := firstNonEmpty(flagMaterial, env.Or("MESHVIEW_MATERIAL", ""), prefs.Material)
	preset, err := table.Lookup(matName)
	if err != nil {
		return nil, prefs, err
	}

	var p pose.Pose
	if flagTranslate != "" {
		if p.Translation, err = pose.ParseTriple(flagTranslate); err != nil {
			return nil, prefs, fmt.Errorf("--translate: %w", err)
		}
	}
	if flagRotate != "" {
		if p.RotationDeg, err = pose.ParseTriple(flagRotate); err != nil {
			return nil, prefs, fmt.Errorf("--rotate: %w", err)
		}
	}

	backend := firstNonEmpty(flagBackend, env.Or("MESHVIEW_BACKEND", ""), prefs.Backend, render.DefaultBackend)

	out := flagOut
	if out == "" {
		base := filepath.Base(modelPath)
		out = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}

	width, height := prefs.Width, prefs.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	return &config.View{
		ModelPath: modelPath,
		Backend:   backend,
		Material:  preset,
		Pose:      p,
		OutPath:   out,
		Width:     width,
		Height:    height,
	}, prefs, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
