// Package sortie holds module-level metadata.
package sortie

// Version is the current sortie release.
const Version = "0.1.0"
