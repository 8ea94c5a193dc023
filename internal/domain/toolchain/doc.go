// Package toolchain defines the toolchain identifier accepted by rainy:
// either the floating "master" marker or a MAJOR.MINOR.PATCH version.
package toolchain
