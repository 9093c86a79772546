// Package codec holds the decode contract shared by the monster and spell
// schemas: required-key presence checks, unknown-key reporting, strict
// closed-enum handling and YAML input.
package codec
