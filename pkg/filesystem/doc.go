// Package filesystem provides the filesystem implementations appkit
// performs file I/O through.
//
// The FS interface covers the operations the configuration store needs
// (stat, read, write, mkdir). NewOS is the production implementation;
// NewMemory wraps afero's MemMapFs for hermetic tests.
package filesystem
