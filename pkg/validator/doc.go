// Package validator resolves declarative field validation specs and runs them
// against fields supplied by a field.Accessor, producing an ordered report of
// results.
//
// A Spec names the fields to check with a selector, the validator to run and,
// optionally, arguments, a signature label and message templates:
//
//	specs := []validator.Spec{
//	    {Select: "#email", Validate: validator.Sig("required")},
//	    {Select: "#username", Validate: validator.Sig("lengthRange(2,10)")},
//	    {Select: "#zip", Validate: validator.Sig("pattern"), Args: validator.Args{"#####"}},
//	    {Select: "#nick", Validate: validator.Use(myCheck), InvalidMessage: "{0} is taken"},
//	}
//
//	engine := validator.NewEngine(validator.NewRegistry())
//	results, err := engine.ValidateAll(ctx, src, specs)
//
// # Architecture
//
// The pipeline has three stages, each with its own type:
//
//   - Registry maps validator names to functions, argument binders and default
//     message templates. NewRegistry installs the built-ins required,
//     lengthMin, lengthMax, lengthRange and pattern; WithExtended adds
//     patternExact, email, url, uuid, alpha, alphanumeric, numeric, oneOf and
//     equalsField.
//   - Resolver turns a Spec into a ResolvedSpec: it looks the validator up,
//     decodes its arguments into typed parameters, fills in default messages
//     and signature, and selects the fields eagerly.
//   - Engine runs every resolved spec over its fields in order, rendering
//     messages with the message package and threading the results so far
//     into each validator call.
//
// Validator references are a closed union: Named (a registry name with
// optional inline arguments, usually built with Sig) or Custom (a Func
// supplied by the caller, built with Use).
//
// # Error Handling
//
// Validation failures are results, not errors. Errors are reserved for
// misconfiguration and abort the run:
//
//   - ErrUnresolvedValidator: the name is not registered or the custom
//     function is nil.
//   - ErrMissingArgument / ErrInvalidArgument: a built-in received too few
//     or malformed arguments. Built-ins detect this while resolving.
//   - field.ErrInvalidSelector: the selector has empty terms.
//
// Each is wrapped in a *SpecError that records the spec position. A selector
// matching no fields is not an error; the spec simply adds no results.
//
// Results.Err converts invalid results into ValidationErrors, an error value
// that can be inspected with errors.As or ExtractValidationErrors.
//
// # Concurrency
//
// Registry is safe for concurrent registration and lookup. A single
// ValidateAll call is synchronous; separate calls may run in parallel.
package validator
