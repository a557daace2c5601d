package buffer

import "io/fs"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithFilename binds the buffer to a file path used by Save.
func WithFilename(name string) Option {
	return func(b *Buffer) {
		b.filename = name
	}
}

// WithPerm sets the permission bits used when Save creates the file.
func WithPerm(perm fs.FileMode) Option {
	return func(b *Buffer) {
		if perm != 0 {
			b.perm = perm
		}
	}
}
