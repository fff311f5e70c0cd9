package csserr

// Errors accumulates recoverable diagnostics while a Parser keeps going.
// Unlike a returned Go error, adding to Errors never halts the current
// production; it is the parser's side channel for "I tolerated this, but
// you should know about it" (spec.md §7, recoverable tier).
type Errors []Error

// Add appends e.
func (e *Errors) Add(err Error) {
	*e = append(*e, err)
}

// Len returns the number of accumulated errors.
func (e Errors) Len() int {
	return len(e)
}

// Truncate drops every error past n, used by Parser.TryParse to restore the
// error log to its pre-speculation length on failure.
func (e *Errors) Truncate(n int) {
	*e = (*e)[:n]
}
