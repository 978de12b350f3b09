// Package sheet fetches the published member spreadsheet.
//
// The spreadsheet is published as CSV at a fixed URL. Client performs one GET
// per call with no authentication and no retry; the only failures are
// transport errors and non-2xx responses (wrapping ErrStatus). Parsing the
// returned text is the roster package's job.
package sheet
