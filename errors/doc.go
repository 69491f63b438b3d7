/*
Package errors implements the error values shared by all extensions.

Reuse the root errors declared here whenever possible. Each one carries an
ABCI code, so a client can tell a rejected swap apart by the reason: missing
signature, unknown escrow, insufficient funds, wrong asset and so on. If an
extension needs a kind that does not exist, declare it with
Register(code, description) during program startup.

Create errors at the point of failure with ErrXyz.New("...") or
errors.Wrap(err, "...") so that a stacktrace is attached. Only the innermost
wrap records the stack.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context

	%s is just the error message
	%+v is the full stack trace
*/
package errors
