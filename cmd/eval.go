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
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/king-tvlip/ngsolve/hcurldiv"
	"github.com/king-tvlip/ngsolve/utils"
)

// InputParameters describes one evaluation request, read from a YAML file
type InputParameters struct {
	Title       string      `yaml:"Title"`
	ElementType string      `yaml:"ElementType"`
	Order       int         `yaml:"Order"`
	Plus        bool        `yaml:"Plus"`
	VNums       []int       `yaml:"VNums"`
	Points      [][]float64 `yaml:"Points"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Element Type\n", ip.ElementType)
	fmt.Printf("[%d]\t\t\t\t= Order\n", ip.Order)
	fmt.Printf("[%v]\t\t\t= Plus\n", ip.Plus)
	fmt.Printf("%d evaluation points\n", len(ip.Points))
}

// EvalCmd evaluates the basis and its divergence at points from a YAML file
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate shape tensors and divergences at reference points",
	Long: `Evaluate every basis function of the H(curl-div) element at the
points listed in a YAML parameter file and print the shape and divergence
matrices, one row per degree of freedom`,
	Run: func(cmd *cobra.Command, args []string) {
		paramFile, _ := cmd.Flags().GetString("inputParametersFile")
		doProfile, _ := cmd.Flags().GetBool("profile")
		if doProfile {
			defer profile.Start().Stop()
		}
		if len(paramFile) == 0 {
			fmt.Printf("error: must supply an input parameters file (-I, --inputParametersFile)\n")
			exampleFile := `
########################################
Title: "Order 2 triangle at the centroid"
ElementType: trig
Order: 2
Plus: false
VNums: [0, 1, 2]
Points:
  - [0.333333333, 0.333333333]
########################################
`
			fmt.Printf("Example parameters file:%s", exampleFile)
			os.Exit(1)
		}
		data, err := os.ReadFile(paramFile)
		if err != nil {
			fmt.Printf("error reading %s: %s\n", paramFile, err.Error())
			os.Exit(1)
		}
		ip := &InputParameters{}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error parsing %s: %s\n", paramFile, err.Error())
			os.Exit(1)
		}
		ip.Print()
		if err = runEval(ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func runEval(ip *InputParameters) (err error) {
	kind, surface, err := parseElementKind(ip.ElementType)
	if err != nil {
		return
	}
	if surface {
		return evalSurface(ip, kind)
	}
	el, err := hcurldiv.NewElement(kind, ip.Order, ip.Plus)
	if err != nil {
		return
	}
	if len(ip.VNums) != 0 {
		if err = el.SetVertexNumbers(ip.VNums); err != nil {
			return
		}
	}
	var (
		dim      = kind.Dim()
		shape    = utils.NewMatrix(el.NDof, dim*dim)
		divshape = utils.NewMatrix(el.NDof, dim)
	)
	fmt.Printf("NDof = %d, element order = %d\n", el.NDof, el.Order)
	for _, pt := range ip.Points {
		if err = el.CalcShape(pt, shape); err != nil {
			return
		}
		if err = el.CalcDivShape(pt, divshape); err != nil {
			return
		}
		fmt.Printf("point %v:\n", pt)
		shape.Print("shape")
		divshape.Print("divshape")
	}
	return
}

func evalSurface(ip *InputParameters, kind hcurldiv.ElementType) (err error) {
	el, err := hcurldiv.NewSurfaceElement(kind, ip.Order)
	if err != nil {
		return
	}
	if len(ip.VNums) != 0 {
		if err = el.SetVertexNumbers(ip.VNums); err != nil {
			return
		}
	}
	shape := utils.NewMatrix(el.NDof, kind.Dim())
	fmt.Printf("NDof = %d, element order = %d\n", el.NDof, el.Order)
	for _, pt := range ip.Points {
		if err = el.CalcShape(pt, shape); err != nil {
			return
		}
		fmt.Printf("point %v:\n", pt)
		shape.Print("shape")
	}
	return
}

func init() {
	EvalCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file describing the evaluation")
	EvalCmd.Flags().Bool("profile", false, "write a CPU profile for the evaluation")
}
