// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit_test

import (
	"fmt"
	"log"

	"github.com/wittawatj/cmdprod/lib/emit"
	"github.com/wittawatj/cmdprod/lib/grid"
)

func ExamplePrinter() {
	kernel, err := grid.NewParam("k", []grid.Value{grid.StringVal("gauss"), grid.StringVal("imq")}, "")
	if err != nil {
		log.Fatal(err)
	}
	width, err := grid.NewParam("kparams", []grid.Value{grid.IntVal(1), grid.IntVal(2), grid.FloatVal(3.2)}, "")
	if err != nil {
		log.Fatal(err)
	}
	args, err := grid.NewArgs(kernel, width)
	if err != nil {
		log.Fatal(err)
	}

	if err := emit.NewPrinter().Process(args); err != nil {
		log.Fatal(err)
	}
	// Output:
	// --k gauss --kparams 1
	// --k gauss --kparams 2
	// --k gauss --kparams 3.2
	// --k imq --kparams 1
	// --k imq --kparams 2
	// --k imq --kparams 3.2
}

func ExampleCollector() {
	trial, err := grid.NewParam("trial", []grid.Value{grid.IntVal(1), grid.IntVal(2)}, "")
	if err != nil {
		log.Fatal(err)
	}
	kernel, err := grid.NewParamGroup(
		[]string{"k", "kparams"},
		[][]grid.Value{
			{grid.StringVal("gauss"), grid.FloatVal(1.0)},
			{grid.StringVal("imq"), grid.FloatsVal(-0.5, 1.0)},
		},
		nil,
	)
	if err != nil {
		log.Fatal(err)
	}
	args, err := grid.NewArgs(trial, kernel)
	if err != nil {
		log.Fatal(err)
	}

	collector := emit.NewCollector()
	if err := collector.Process(args); err != nil {
		log.Fatal(err)
	}
	for _, line := range collector.Lines() {
		fmt.Println(line)
	}
	// Output:
	// --trial 1 --k gauss --kparams 1.0
	// --trial 1 --k imq --kparams -0.5, 1.0
	// --trial 2 --k gauss --kparams 1.0
	// --trial 2 --k imq --kparams -0.5, 1.0
}
