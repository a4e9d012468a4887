package ports

// Fingerprinter summarises an inventory listing as a short digest.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a digest that is independent of the order of names.
	Fingerprint(names []string) string
}
