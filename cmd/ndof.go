/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/king-tvlip/ngsolve/hcurldiv"
)

// NDofCmd prints DOF-count tables per element kind and order
var NDofCmd = &cobra.Command{
	Use:   "ndof",
	Short: "Print degree-of-freedom counts per element kind and order",
	Long: `Print the number of degrees of freedom of the H(curl-div) element
for orders 0..maxOrder on the chosen reference element kind`,
	Run: func(cmd *cobra.Command, args []string) {
		kindName, _ := cmd.Flags().GetString("elementType")
		maxOrder, _ := cmd.Flags().GetInt("maxOrder")
		plus, _ := cmd.Flags().GetBool("plus")
		if maxOrder < 0 {
			maxOrder = viper.GetInt("order")
		}
		kind, surface, err := parseElementKind(kindName)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		fmt.Printf("%-12s %8s %8s\n", kindName, "order", "ndof")
		for p := 0; p <= maxOrder; p++ {
			var ndof int
			if surface {
				el, err := hcurldiv.NewSurfaceElement(kind, p)
				if err != nil {
					fmt.Printf("error: %s\n", err.Error())
					return
				}
				ndof = el.NDof
			} else {
				el, err := hcurldiv.NewElement(kind, p, plus)
				if err != nil {
					fmt.Printf("error: %s\n", err.Error())
					return
				}
				ndof = el.NDof
			}
			fmt.Printf("%-12s %8d %8d\n", "", p, ndof)
		}
	},
}

func parseElementKind(name string) (kind hcurldiv.ElementType, surface bool, err error) {
	switch name {
	case "trig":
		kind = hcurldiv.Triangle
	case "tet":
		kind = hcurldiv.Tetrahedron
	case "segm-surface":
		kind, surface = hcurldiv.Segment, true
	case "trig-surface":
		kind, surface = hcurldiv.Triangle, true
	default:
		err = fmt.Errorf("unknown element type %q, want trig, tet, segm-surface or trig-surface", name)
	}
	return
}

func init() {
	NDofCmd.Flags().StringP("elementType", "e", "trig", "trig, tet, segm-surface or trig-surface")
	NDofCmd.Flags().IntP("maxOrder", "N", -1, "largest order to tabulate (default from config)")
	NDofCmd.Flags().Bool("plus", false, "enriched (plus) basis extension")
}
