package ui

import (
	"fmt"
	"strings"

	"github.com/noborus/ov/oviewer"

	"tsuika/internal/drawable"
)

// ShowInPager shows content in the ov pager. It takes over the terminal until
// the user leaves the pager.
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Keep the normal screen untouched after ov exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := root.Run(); err != nil {
		return fmt.Errorf("pager failed: %w", err)
	}
	return nil
}

// ShowRegistryInPager pages the whole rendered registry without slicing
func ShowRegistryInPager(registry *drawable.Registry) error {
	return ShowInPager(registry.Draw())
}
