package main

import (
	"fmt"

	"github.com/eatulrajput/campusgpt"
)

// Run executes the reindex command.
func (c *ReindexCmd) Run(deps *Dependencies) error {
	indexed, err := deps.Index.Rebuild(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", campusgpt.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d pages.\n", indexed)
	return nil
}
