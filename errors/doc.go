// Package errors provides structured errors for the rpg-entities schemas.
//
// Every failure returned by the entity packages is an *Error carrying a
// Code, a human readable message and optional metadata:
//
//	err := errors.InvalidArgumentf("size %q is not a known size", raw).
//	    WithMeta("field", "size")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := json.Unmarshal(data, &m); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed monster payload")
//	}
//
// # Validation Errors
//
// Required-field and closed-enum checks collect every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", m.Name, vb)
//	errors.ValidateEnum("size", string(size), sizeCodes, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The per-field messages are available through GetFields.
//
// # Error Codes
//
//   - InvalidArgument: the payload does not conform to the schema
//   - NotFound: an input file or fixture does not exist
//   - FailedPrecondition: a caller asked for something the payload cannot satisfy
//   - OutOfRange: a value is outside its documented bounds
//   - Unimplemented: a requested example rendering is not available
//   - Internal: encoding or other unexpected failures
package errors
