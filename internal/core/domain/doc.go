// Package domain defines the core entities for ctxprompts.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines:
//
//   - PromptRecord: one act/prompt row of the dataset
//   - LookupOptions: where to read the dataset and how many results to keep
//   - Sentinel errors shared by every layer
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
