// Package tools defines tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Site tools: calculer_volume, estimer_cout_reseau, memo_chantier.
//   - Inputs are validated against the declared contract before a handler
//     runs; unknown materials and network kinds fall back to default rates
//     silently.
package tools
