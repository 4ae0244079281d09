// Package schema decodes generic documents into typed constant sets.
//
// Decoding is strict: optional fields default only when their key is absent,
// unknown fields are rejected, and operator names are validated into
// core.Operator so the resolver never sees an unsupported one.
package schema
