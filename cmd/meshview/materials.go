package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meshview/internal/material"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the available material presets",
	Args:  cobra.NoArgs,
	RunE:  runMaterials,
}

func runMaterials(cmd *cobra.Command, args []string) error {
	table := material.Builtin()
	added, err := table.LoadDir(materialsDir)
	if err != nil {
		return err
	}

	fmt.Printf("%-10s  %-18s  %8s  %9s\n", "NAME", "COLOR (RGB)", "METALLIC", "ROUGHNESS")
	for _, name := range table.Names() {
		p, _ := table.Get(name)
		fmt.Printf("%-10s  %.2f, %.2f, %.2f    %8.2f  %9.2f\n",
			p.Name, p.Color[0], p.Color[1], p.Color[2], p.Metallic, p.Roughness)
	}
	if added > 0 {
		fmt.Printf("\n%d preset(s) loaded from %s\n", added, materialsDir)
	}
	return nil
}
