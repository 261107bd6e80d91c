// Package specfile loads validation forms from YAML or JSON files.
//
// A form file names a set of specs and, optionally, display labels for its
// fields:
//
//	name: signup
//	labels:
//	  email: E-mail address
//	specs:
//	  - select: "#email"
//	    validate: required
//	  - select: "#username"
//	    validate: lengthRange(2,10)
//	  - select: "#code"
//	    validate: pattern
//	    args: ["##-@@"]
//	    invalidMessage: "{0} looks wrong"
//
// The validate string is parsed as a compact signature, so inline arguments
// take precedence over args. Load reads one file; LoadDir reads every
// .yaml, .yml and .json file in a directory and keys the forms by name.
// A form without a name is named after its file.
package specfile
