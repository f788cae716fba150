package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/thickline"
)

var (
	pickScene  sceneConfig
	pickRadius float64
)

var pickCmd = &cobra.Command{
	Use:   "pick [x] [y]",
	Short: "Report the line under a pixel of the sample scene",
	Args:  cobra.ExactArgs(2),
	RunE:  runPick,
}

func init() {
	addSceneFlags(pickCmd, &pickScene)
	pickCmd.Flags().Float64Var(&pickRadius, "radius", thickline.PickRadius, "pick radius in pixels")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	px, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	py, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	s, err := buildScene(pickScene)
	if err != nil {
		return err
	}
	ray := s.camera.RayFromPixel(px, py, s.viewport)

	best := -1
	var hit thickline.Intersection
	for i, l := range s.lines {
		in, ok := l.Raycast(ray, l.PickThreshold(pickRadius))
		if ok && (best < 0 || in.Distance < hit.Distance) {
			best, hit = i, in
		}
	}

	out := cmd.OutOrStdout()
	if best < 0 {
		fmt.Fprintln(out, "no line hit")
		return nil
	}
	p := hit.PointOnLine
	fmt.Fprintf(out, "%s: segment %d at (%.4f, %.4f, %.4f), distance %.4f\n",
		s.names[best], hit.Segment, p[0], p[1], p[2], hit.Distance)
	return nil
}
