// Package config loads analysis options from YAML and the word list used by
// the dictionary segmenter.
package config
