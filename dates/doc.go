// Package dates converts between textual and time.Time representations of
// instants and resolves day-of-week tokens.
//
// Every function is pure apart from reading a Clock, which callers inject.
// Parsed text without a UTC offset is placed in UTC, and canonical output is
// ISO-8601 with a zero offset written as "Z".
package dates
