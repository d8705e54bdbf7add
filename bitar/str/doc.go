// Package str provides string case conversion and small string helpers.
//
// Case conversion tokenizes an input in a known source case into lowercase words and
// renders those words in a target case:
//
//	str.FromSnake("my_example_string").ToCamel()  // "myExampleString"
//	str.Convert(str.Camel, str.Title, "myExampleString") // "My Example String"
//
// Inputs are not validated against their claimed source case; malformed input yields
// a best-effort result. Every function is safe for concurrent use.
package str
