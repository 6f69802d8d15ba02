package ports

// DocumentLoader reads a JSON document from disk.
// Numbers are decoded as json.Number so callers can tell integers from floats.
type DocumentLoader interface {
	Load(path string) (any, error)
}
