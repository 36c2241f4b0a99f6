package ports

// FileCopier places static files.
//
//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type FileCopier interface {
	// Copy writes src to dst, creating parent directories.
	// changed is false when dst already held identical content.
	Copy(src, dst string) (changed bool, err error)
}
