package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meshview/internal/config"
	"meshview/internal/material"
	"meshview/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted viewer preferences",
	Long: `Without flags, prints the current preferences. With flags, updates
them and writes ` + config.PrefsPath + `.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	f := configCmd.Flags()
	f.Int("width", 0, "default viewport width")
	f.Int("height", 0, "default viewport height")
	f.String("backend", "", "default backend")
	f.String("material", "", "default material preset")
	f.Bool("grid", true, "show the ground grid in the window backend")
	f.Bool("fps", false, "show the FPS overlay")
	f.Bool("mem", false, "show the memory overlay")
}

func runConfig(cmd *cobra.Command, args []string) error {
	prefs, _ := config.LoadPrefs(config.PrefsPath)

	changed := false
	f := cmd.Flags()
	if f.Changed("width") {
		prefs.Width, _ = f.GetInt("width")
		changed = true
	}
	if f.Changed("height") {
		prefs.Height, _ = f.GetInt("height")
		changed = true
	}
	if f.Changed("backend") {
		name, _ := f.GetString("backend")
		if _, err := render.Default().Lookup(name); err != nil {
			return err
		}
		prefs.Backend = name
		changed = true
	}
	if f.Changed("material") {
		name, _ := f.GetString("material")
		table := material.Builtin()
		if _, err := table.LoadDir(materialsDir); err != nil {
			return err
		}
		if _, err := table.Lookup(name); err != nil {
			return err
		}
		prefs.Material = name
		changed = true
	}
	if f.Changed("grid") {
		prefs.GridVisible, _ = f.GetBool("grid")
		changed = true
	}
	if f.Changed("fps") {
		prefs.ShowFPS, _ = f.GetBool("fps")
		changed = true
	}
	if f.Changed("mem") {
		prefs.ShowMemAlloc, _ = f.GetBool("mem")
		changed = true
	}

	if changed {
		if err := config.SavePrefs(config.PrefsPath, prefs); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", config.PrefsPath)
	}

	fmt.Printf("width: %d\nheight: %d\n", prefs.Width, prefs.Height)
	fmt.Printf("grid: %v\nfps: %v\nmem: %v\n", prefs.GridVisible, prefs.ShowFPS, prefs.ShowMemAlloc)
	fmt.Printf("backend: %s\nmaterial: %s\n",
		orDefault(prefs.Backend, render.DefaultBackend), orDefault(prefs.Material, material.DefaultName))
	return nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
