// Package fake provides field-value fakers for synthetic rows.
//
// Every faker draws exclusively from the *rand.Rand it is handed, so a
// generation run seeded through rowgen stays fully reproducible. No faker
// touches ambient global randomness.
package fake
