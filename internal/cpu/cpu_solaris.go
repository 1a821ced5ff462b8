//go:build solaris

package cpu

// newPlatformReader creates a psrinfo backed reader
func newPlatformReader(opts Options) Reader {
	return NewPsrinfoReader(ShellRunner{}, opts)
}
