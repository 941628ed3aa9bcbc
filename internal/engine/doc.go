// Package engine is the boundary between refit and the external rewrite engine.
//
// A config.RewriteConfiguration registers into an Engine through the
// config.Handle interface. Nothing is checked at registration time; the
// engine checks identifiers when it is asked to do something with them.
//
// Key components:
//
// Engine: records paths, rules, sets and skipped paths. Validate checks the
// rules and sets against a catalog.Catalog. ResolveRules expands sets into
// their member rules.
//
// Discover: walks the configured paths and lists the source files the
// external engine would read, leaving out skipped paths.
//
// Render: writes the external engine's own configuration file.
//
// Process: renders that file to a temporary location and runs the external
// engine on it through a Runner.
//
// Watch: reports changes to source files and to the configuration file.
//
// Usage:
//
//	eng := engine.New(catalog.Default(), logger)
//	config.Build(root, eng)
//
//	if err := eng.Validate(); err != nil {
//	    // handle error
//	}
//
//	err := eng.Process(ctx, engine.ProcessOptions{DryRun: true, Stdout: os.Stdout})
package engine
