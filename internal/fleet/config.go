package fleet

const DefaultPageSize = 10

type Config struct {
	// PageSize is used when a commit log request does not specify one.
	PageSize int
}

func (c Config) pageSize() int {
	if c.PageSize <= 0 {
		return DefaultPageSize
	}
	return c.PageSize
}
