// Package config holds the formatting defaults shared by bitar helpers.
//
// A Config is an immutable value. Changes are expressed as a Patch, merged onto the
// current snapshot with Merge, validated, and swapped into a Store as a whole:
//
//	patch, err := config.Load("bitar.toml")
//	if err != nil {
//	    return err
//	}
//
//	cfg, err := store.Apply(patch)
//
// Patches can come from TOML or YAML files (Load) or from BITAR_* environment
// variables with optional dotenv files (FromEnv). Watch keeps a Store in sync with a
// file as it changes on disk.
package config
