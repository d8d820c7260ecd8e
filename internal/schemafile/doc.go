// Package schemafile loads, validates and builds union declarations written in YAML.
//
// A schema file declares one or more unions:
//
//	version: "1"
//	unions:
//	  - name: Shape
//	    tag: kind
//	    variants:
//	      circle: {fields: {radius: float}}
//	      rect:   {fields: {w: float, h: float}}
//	  - name: Result
//	    value: value
//	    variants:
//	      - name: ok
//	        type: int
//	      - name: err
//	        type: string
//
// Variants may be given as a list or as a mapping keyed by name. A variant with
// fields is record-shaped; a variant with a type is value-shaped and requires
// the union to name a value field.
package schemafile
