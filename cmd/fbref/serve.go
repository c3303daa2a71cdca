package main

import (
	"fmt"

	"github.com/raghavtripped/fbref-dashboard/chi"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := chi.NewServer(deps.Reports, deps.Parser)
	srv.Addr = c.Addr

	if err := srv.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %s\n", c.Addr, err)
		return err
	}
	defer srv.Close()

	fmt.Fprintf(deps.Stdout, "Serving API on %s\n", srv.URL())

	<-deps.Ctx.Done()
	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
