// Code generated by ent, DO NOT EDIT.

package ent

// The schema-stitching logic is generated in github.com/dsp2b/dsp2b/ent/runtime/runtime.go
