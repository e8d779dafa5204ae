//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the viewer binary into bin/.
func (Build) Viewer() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/filare", "."), withStream()); err != nil {
		return err
	}
	return nil
}
