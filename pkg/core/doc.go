// Package core defines the shared language of constgen.
//
// This package contains:
//   - The ConstantSet tagged variant and its payloads (EnumSet, BitflagSet, AliasSet)
//   - The closed Operator set used by bit-flag composites
//   - The resolved model handed to emitters (ResolvedSet, Constant)
//   - Manifest and Target, the multi-definition file layout
//   - The structured error taxonomy shared by the decoder and the resolver
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
