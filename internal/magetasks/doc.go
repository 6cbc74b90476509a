// Package magetasks holds the build, test and lint tasks behind the
// windcfg Magefile.
package magetasks
