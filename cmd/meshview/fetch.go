package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"meshview/internal/archive"
	"meshview/internal/download"
	"meshview/internal/mesh"
)

// sampleModelURL is the Stanford bunny mesh from the Open3D data releases;
// a small, well-known model for trying the viewer.
const sampleModelURL = "https://github.com/isl-org/open3d_downloads/releases/download/20220201-data/BunnyMesh.ply"

// modelsDir is where fetched models are saved.
const modelsDir = "assets/models"

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download a model file (default: the Stanford bunny)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := sampleModelURL
	if len(args) == 1 {
		url = args[0]
	}

	saved, err := download.Download(url, modelsDir)
	if err != nil {
		return err
	}

	if strings.EqualFold(filepath.Ext(saved), ".zip") {
		dest := strings.TrimSuffix(saved, filepath.Ext(saved))
		if _, err := archive.Unzip(saved, dest); err != nil {
			return err
		}
		models, err := archive.FindModelFiles(dest, modelsDir, mesh.Extensions())
		if err != nil {
			return err
		}
		if len(models) == 0 {
			return fmt.Errorf("fetch: no model files in %s", saved)
		}
		fmt.Printf("Extracted %s:\n", filepath.Base(saved))
		for _, m := range models {
			fmt.Printf("  %s\n", filepath.Join(modelsDir, filepath.FromSlash(m)))
		}
		return nil
	}

	fmt.Printf("Saved %s\n", saved)
	return nil
}
