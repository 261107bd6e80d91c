// Package message renders validation result messages from positional
// templates and loads template catalogs from YAML or JSON files.
//
// Templates use numbered placeholders: {0} is replaced with the field's
// display name and {1}, {2}, ... with the validator arguments in order.
//
//	message.Render("{0} must have between {1} and {2} characters!", "Username", 2, 10)
//	// "Username must have between 2 and 10 characters!"
//
// Only the first occurrence of each placeholder is substituted and
// placeholders without a matching argument are left as they are.
//
// A Catalog maps validator names to replacement templates:
//
//	required:
//	  invalid: "{0} cannot be blank"
//	lengthRange:
//	  valid: "{0} looks good"
//	  invalid: "{0} needs {1} to {2} characters"
package message
