package corpus

// File is one source file supplied to the matchers. Content is read once at
// load time and never mutated.
type File struct {
	Path    string
	Content string
}

// Corpus is the immutable, ordered collection of source files for one run.
// Order is the loader's walk order and is part of the matching contract: the
// first file satisfying a dynamic candidate wins.
type Corpus struct {
	files []File
}

// New creates a corpus from the given files, preserving their order
func New(files []File) *Corpus {
	return &Corpus{files: files}
}

// Files returns the files in corpus order
func (c *Corpus) Files() []File {
	return c.files
}

// Len returns the number of files in the corpus
func (c *Corpus) Len() int {
	return len(c.files)
}
