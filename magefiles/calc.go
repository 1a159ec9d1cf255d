//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Calc builds the CLI and runs it over every PDF in transcripts/.
func Calc() error {
	mg.Deps(Build)

	files, err := filepath.Glob(filepath.Join("transcripts", "*.pdf"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("[calc] No PDFs in transcripts/.")
		return nil
	}

	args := append([]string{"calc", "--save"}, files...)
	return sh.RunV(filepath.Join(binDir, binName), args...)
}
