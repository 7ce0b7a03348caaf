// Package errors provides the structured error type used at the edges of the
// character sheet: the character store, the reference catalog client and the
// CLI.
//
// The rules engine itself never returns errors. Malformed or unresolvable
// input is repaired or dropped there, so these codes only describe failures
// of collaborators and of user input at the command line.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %q not found", name)
//	err := errors.InvalidArgument("character name is required")
//
// Metadata travels with the error:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("name", name)
//
// Wrapping keeps the original code:
//
//	if err := repo.Upsert(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save character")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // offer to create a fresh character
//	}
//
// # Exit codes
//
// The CLI maps a Code to a process exit status with Code.ExitCode.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
