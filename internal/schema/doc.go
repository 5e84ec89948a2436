// Package schema holds the raw record model shared by all front-ends and
// the extractor that normalizes it into field descriptors.
//
// Records come from Go packages (see package analyze), YAML files or HCL
// files. A YAML schema looks like:
//
//	version: "1"
//	package: command
//	records:
//	  - name: Command
//	    fields:
//	      - name: executable
//	        type: string
//	      - name: args
//	        type: sequence(string)
//	        builder:
//	          each: arg
//	      - name: env
//	        type: optional(string)
//
// The same record in HCL:
//
//	package = "command"
//
//	record "Command" {
//	  field "executable" { type = string }
//	  field "args" {
//	    type = sequence(string)
//	    builder { each = "arg" }
//	  }
//	  field "env" { type = optional(string) }
//	}
//
// Fields may also be written as an ordered YAML mapping of name to type
// (fields: {executable: string, env: optional(string)}).
package schema
