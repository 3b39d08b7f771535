package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"meshview/internal/mesh"
)

var infoCmd = &cobra.Command{
	Use:   "info <model>",
	Short: "Print triangle count and bounds of a model file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	m, err := mesh.Load(path)
	if err != nil {
		return err
	}
	info := mesh.Describe(m)

	fmt.Printf("File: %s\n", filepath.Base(path))
	fmt.Printf("Triangles: %d\n", info.Triangles)
	fmt.Printf("Bounds min: %.4f, %.4f, %.4f\n", info.Min[0], info.Min[1], info.Min[2])
	fmt.Printf("Bounds max: %.4f, %.4f, %.4f\n", info.Max[0], info.Max[1], info.Max[2])
	fmt.Printf("Size: %.4f x %.4f x %.4f\n",
		info.Max[0]-info.Min[0], info.Max[1]-info.Min[1], info.Max[2]-info.Min[2])
	return nil
}
