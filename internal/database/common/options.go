package common

type Settings struct {
	ChunkSize int
}

type Option func(*Settings)

// WithChunkSize caps the number of rows rendered into one INSERT statement.
func WithChunkSize(n int) Option {
	return func(s *Settings) {
		if n > 0 {
			s.ChunkSize = n
		}
	}
}

func Apply(opts []Option) Settings {
	s := Settings{ChunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
