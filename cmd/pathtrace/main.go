// Command pathtrace follows the path through ASCII diagrams and prints the
// letters collected along the way.
//
//	pathtrace trace diagram.txt
//	cat diagram.txt | pathtrace trace --explain
//	pathtrace samples --check
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs root and prints any error that was not already reported,
// such as unknown flags or a wrong argument count.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}
