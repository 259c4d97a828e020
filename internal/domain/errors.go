package domain

import "errors"

var (
	// ErrDegenerateCorpus signals that corpus tokenization produced an empty
	// vocabulary. Fatal at startup: the engine cannot be constructed.
	ErrDegenerateCorpus = errors.New("degenerate corpus: empty vocabulary")
	// ErrInvalidQuery signals malformed query input.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnknownDomain signals a corpus item referencing a domain that is not loaded.
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrDuplicateItem signals a duplicate knowledge item identifier in the corpus.
	ErrDuplicateItem = errors.New("duplicate item id")
)
