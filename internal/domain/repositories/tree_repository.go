package repositories

// TreeRepository searches the working tree. Only force mode uses it.
type TreeRepository interface {
	// FindFile returns the first path named filename at most maxDepth
	// directories below root.
	FindFile(root, filename string, maxDepth int) (string, bool)
}
