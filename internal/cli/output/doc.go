// Package output renders tapkey command results.
//
// Formats:
//
//   - table: aligned columns via text/tabwriter (default)
//   - json: indented encoding/json
//   - yaml: gopkg.in/yaml.v3
//
// Structs render as FIELD/VALUE rows; slices of structs render one row per
// element. Field names come from the json tag.
package output
