// Package generator provides the file operations and template rendering
// used to lay down generated projects.
//
// # Operations
//
// Every write goes through an Operation so it can be validated before any
// file is touched:
//
//	ops := []generator.Operation{
//	    &generator.WriteFileOp{Path: "src/app.css", Content: css, Mode: 0644},
//	    &generator.PatchFileOp{Path: "vite.config.ts", Patch: addPlugin},
//	}
//	err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: true})
//
// Validation runs for all operations first. If any fails, nothing is written.
//
// # Templates
//
// Renderer parses templates once and caches them by name. Use
// NewRendererWithDelims for sources where "{{" is meaningful, such as JSX.
package generator
