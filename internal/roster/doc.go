// Package roster parses the published member sheet and classifies its rows.
//
// # Sheet Format
//
// The sheet is exported as comma-separated text with a header row:
//
//	name,facebookLink,role,pictureLink
//	Alice,https://facebook.com/alice,leader,pic1.png
//
// Columns are positional. Parse splits on newlines and commas without any
// quote handling, trims every field, and drops rows with an empty name.
//
// # Groups
//
// Build sorts records into two groups by role, compared case-insensitively:
//
//   - Leaders: role "leader", in sheet order
//   - Members: role "member", ordered by name with golang.org/x/text/collate
//     unless Options.SortMembers is false
//
// Rows with any other role (for example "guest") belong to neither group.
//
// # Display Defaults
//
// Record carries raw fields. DisplayName, Profile and Picture apply the
// display sentinels (UnknownName, NoProfile, DefaultPicture) so the rest of
// the program never sees empty strings where a value is expected.
package roster
